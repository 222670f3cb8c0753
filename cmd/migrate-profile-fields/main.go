// Command migrate-profile-fields adds the profile columns and the username index to users.
// It is safe to re-run.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/migrations"
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

	if err := migrations.Run(context.Background(), migrations.NewGormExecer(db), migrations.ProfileFields); err != nil {
		slog.Error("migration failed", "error", err)
		return 1
	}
	return 0
}
