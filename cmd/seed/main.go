// Command seed inserts the default addiction catalogue. Existing rows are
// left untouched.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/seed"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/postgres"
)

func main() {
	os.Exit(run())
}

func run() int {
	logging.Setup(false)

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL environment variable is required")
		return 1
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		return 1
	}
	defer database.Close(db)

	if _, err := seed.Run(context.Background(), postgres.New(db)); err != nil {
		slog.Error("seed failed", "error", err)
		return 1
	}
	return 0
}
