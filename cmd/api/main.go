package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/inventory-tool-api/docs"
	"github.com/jhoicas/inventory-tool-api/internal/application/business"
	"github.com/jhoicas/inventory-tool-api/internal/application/inventory"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventory-tool-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-tool-api/pkg/config"
	"github.com/jhoicas/inventory-tool-api/pkg/logger"
)

// @title                       Inventory Tool API
// @version                     1.0
// @description                 Disponibilidad y movimientos de inventario; cuentas de empresa por dominio.
// @BasePath                    /
// @securityDefinitions.apikey  ApiKey
// @in                          header
// @name                        x-api-key
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.Auth.ToolAPIKey == "" {
		log.Warn().Msg("TOOL_API_KEY no configurado: las rutas protegidas responderán 500")
	}

	ctx := context.Background()

	if cfg.DB.Enabled() && cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.DB.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Ints64("versions", applied).Msg("migraciones aplicadas")
	}

	// Backend elegido una sola vez: PostgreSQL si hay DATABASE_URL, mock en memoria si no.
	store, err := storage.Open(ctx, storage.Config{
		ConnectionString: cfg.DB.DatabaseURL,
		MaxConns:         cfg.DB.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		cancelPing()
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	cancelPing()
	log.Info().Str("backend", store.Kind()).Msg("backend de inventario seleccionado")

	inventorySvc := inventory.NewService(store.Inventory)
	var businessUC *business.UseCase
	if store.Accounts != nil {
		businessUC = business.NewUseCase(store.Accounts)
	}

	var metrics *httpRouter.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = httpRouter.NewMetrics(reg)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Tool API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory:  inventorySvc,
		Business:   businessUC,
		ToolAPIKey: cfg.Auth.ToolAPIKey,
		Metrics:    metrics,
		Log:        log,
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
