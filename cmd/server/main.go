package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/seed"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/inmemory"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/postgres"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup(false)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	debug := cfg.AppEnv == "development"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	var (
		store        storage.Store
		pgLogHandler *logging.PGHandler
	)
	switch cfg.Storage {
	case config.StorageMemory:
		logging.Setup(debug)
		mem := inmemory.New()
		if _, err := seed.Run(ctx, mem); err != nil {
			slog.Error("seeding in-memory store failed", "error", err)
			os.Exit(1)
		}
		store = mem
		slog.Warn("running with in-memory storage, data is lost on restart")
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		store = postgres.New(db)

		// PostgreSQL log handler (ERROR+ async batch) and 30-day retention
		logStore := logging.NewGormLogStore(db)
		pgLogHandler = logging.NewPGHandler(logStore)
		logging.Setup(debug, pgLogHandler)
		logging.StartCleanup(ctx, logStore)
	}

	// Services
	content := services.NewContentPolicy()
	reportService := services.NewReportService(store)
	feedService := services.NewFeedService(store, content)
	userService := services.NewUserService(store, content, cfg.UsernameChangeCooldown)
	recoveryService := services.NewRecoveryService(store)

	// Handlers
	healthHandler := handlers.NewHealthHandler(store, cfg.Storage)
	reportHandler := handlers.NewReportHandler(reportService)
	feedHandler := handlers.NewFeedHandler(feedService)
	userHandler := handlers.NewUserHandler(userService)
	recoveryHandler := handlers.NewRecoveryHandler(recoveryService)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, healthHandler, reportHandler, feedHandler, userHandler, recoveryHandler)

	if cfg.ModerationOpen() {
		slog.Warn("ADMIN_TOKEN and JWT_SECRET are unset, moderation routes are open")
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "storage", cfg.Storage)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := store.Close(); err != nil {
		slog.Error("storage close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error(), "request_id", c.Locals("requestid"))
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.Failure(message))
}
