package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appaudit "github.com/jayvico/ams-api/internal/application/audit"
	"github.com/jayvico/ams-api/internal/application/auth"
	"github.com/jayvico/ams-api/internal/application/usecase"
	infrapdf "github.com/jayvico/ams-api/internal/infrastructure/pdf"
	"github.com/jayvico/ams-api/internal/infrastructure/postgres"
	"github.com/jayvico/ams-api/internal/interfaces/http"
	"github.com/jayvico/ams-api/internal/obs"
	"github.com/jayvico/ams-api/pkg/config"
	"github.com/jayvico/ams-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	obs.Init()

	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)

	recorder := appaudit.NewRecorder(auditRepo, log)
	defer recorder.Close()

	authUC := auth.NewUseCase(userRepo, recorder, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	sheetUC := usecase.NewVehicleSheetUseCase(vehicleRepo, customerRepo, infrapdf.NewVehicleSheetGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(obs.Middleware())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Jayvico AMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   cfg.App.Name,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "alive",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "not ready",
				"database": "disconnected",
			})
		}
		return c.JSON(fiber.Map{
			"status":   "ready",
			"database": "connected",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(obs.Handler()))

	http.Router(app, http.RouterDeps{
		AuthUC:     authUC,
		VehicleUC:  vehicleUC,
		SheetUC:    sheetUC,
		CustomerUC: customerUC,
		AuditRec:   recorder,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
