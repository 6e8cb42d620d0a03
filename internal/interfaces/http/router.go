package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/azimuth-crm/internal/application/dto"
	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	ClientUC    *usecase.ClientUseCase
	ExportUC    *usecase.ExportUseCase
	Logger      *logger.Logger
	Metrics     *Metrics // nil = sin /metrics
	// Ping verifica el almacenamiento para /health; nil = siempre disponible.
	Ping func(ctx context.Context) error
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID())
	app.Use(AccessLog(log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacenamiento no disponible"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	exportHandler := NewExportHandler(deps.ExportUC)
	clients.Get("/export/pdf", exportHandler.PDF)
	clients.Get("/export/csv", exportHandler.CSV)
	clients.Get("/export/xml", exportHandler.XML)

	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id", clientHandler.Patch)
	clients.Delete("/:id", clientHandler.Delete)
}
