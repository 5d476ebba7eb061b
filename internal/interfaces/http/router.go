package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/inventory-tool-api/internal/application/business"
	"github.com/jhoicas/inventory-tool-api/internal/application/dto"
	"github.com/jhoicas/inventory-tool-api/internal/application/inventory"
	"github.com/jhoicas/inventory-tool-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory  *inventory.Service
	Business   *business.UseCase // nil = rutas /business no se registran (backend en memoria)
	ToolAPIKey string
	Metrics    *Metrics // nil = sin /metrics
	Log        *logger.Logger
}

// Router registra middlewares globales y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// recover va después del logger y las métricas: un panic también deja línea de log y muestra.
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log.Component("http")))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	panicLog := log.Component("recover")
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			panicLog.Error().
				Interface("panic", e).
				Str("route", c.Route().Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recuperado")
		},
	}))

	// Público
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	// Rutas protegidas (requieren x-api-key)
	protected := APIKeyMiddleware(deps.ToolAPIKey)

	invGroup := app.Group("/inventory", protected)
	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Metrics, log.Component("inventory"))
	invGroup.Get("/:id", inventoryHandler.GetAvailability)
	invGroup.Post("/reserve/:id/:qty", inventoryHandler.Reserve)
	invGroup.Post("/receive/:id/:qty", inventoryHandler.Receive)

	if deps.Business != nil {
		bizGroup := app.Group("/business", protected)
		businessHandler := NewBusinessHandler(deps.Business, log.Component("business"))
		bizGroup.Post("/", businessHandler.Create)
		bizGroup.Get("/:domain", businessHandler.GetByDomain)
	}
}
