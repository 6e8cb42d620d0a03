package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/azimuth-crm/docs"
	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/bootstrap"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/azimuth-crm/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/azimuth-crm/internal/interfaces/http"
	"github.com/jhoicas/azimuth-crm/pkg/config"
	"github.com/jhoicas/azimuth-crm/pkg/logger"
)

// @title			Azimuth CRM API
// @version		1.0
// @description	Registro de clientes del CRM: alta, consulta, edición y exportación.
// @BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer storage.Close()

	if cfg.App.SeedDemo {
		n, err := usecase.NewSeedUseCase(storage.Tx).SeedIfEmpty(ctx, usecase.DemoClients())
		if err != nil {
			log.Error().Err(err).Msg("carga de clientes de demostración")
		} else if n > 0 {
			log.Info().Int("clients", n).Msg("clientes de demostración cargados")
		}
	}

	clientUC := usecase.NewClientUseCase(storage.Clients)
	exportUC := usecase.NewExportUseCase(
		storage.Clients,
		infrapdf.NewMarotoPDFGenerator(infrapdf.Options{Title: cfg.PDF.Title, FontPath: cfg.PDF.FontPath}),
		export.NewCSVWriter(),
		export.NewXMLWriter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware falla al arrancar si el archivo no existe.
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Azimuth CRM API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	var metrics *httpRouter.Metrics
	if cfg.HTTP.Metrics {
		metrics = httpRouter.NewMetrics()
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		ClientUC:    clientUC,
		ExportUC:    exportUC,
		Logger:      log,
		Metrics:     metrics,
		Ping:        storage.Ping,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
