// seed carga los clientes de demostración en la base configurada (DB_DRIVER)
// si todavía no hay ningún cliente. Aplica las migraciones pendientes antes.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/bootstrap"
	"github.com/jhoicas/azimuth-crm/pkg/config"
	"github.com/jhoicas/azimuth-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver == config.DriverMemory {
		fmt.Fprintln(os.Stderr, "DB_DRIVER=memory no persiste datos; nada que sembrar")
		os.Exit(1)
	}
	cfg.DB.AutoMigrate = true
	cfg.Cache.Enabled = false

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := bootstrap.OpenStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer storage.Close()

	n, err := usecase.NewSeedUseCase(storage.Tx).SeedIfEmpty(ctx, usecase.DemoClients())
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	if n == 0 {
		log.Info().Msg("la tabla clients ya tiene datos; no se insertó nada")
		return
	}
	log.Info().Int("clients", n).Str("driver", cfg.DB.Driver).Msg("clientes de demostración insertados")
}
