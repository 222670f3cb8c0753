package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
)

// AddictionSeeder inserts rows whose name is free and leaves existing rows
// untouched.
type AddictionSeeder interface {
	InsertAddictionsIgnoringConflicts(ctx context.Context, addictions []models.Addiction) (int64, error)
}

// DefaultAddictions is the canonical catalogue offered during onboarding.
var DefaultAddictions = []models.Addiction{
	{Name: "Alcohol", Icon: "🍺"},
	{Name: "Smoking", Icon: "🚬"},
	{Name: "Drugs", Icon: "💊"},
	{Name: "Gambling", Icon: "🎰"},
	{Name: "Pornography", Icon: "🔞"},
	{Name: "Social Media", Icon: "📱"},
	{Name: "Gaming", Icon: "🎮"},
	{Name: "Sugar", Icon: "🍬"},
}

// Run seeds the default addictions. Re-running never duplicates a row and
// never rewrites the icon of one that already exists.
func Run(ctx context.Context, seeder AddictionSeeder) (int64, error) {
	rows := make([]models.Addiction, len(DefaultAddictions))
	copy(rows, DefaultAddictions)

	inserted, err := seeder.InsertAddictionsIgnoringConflicts(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("failed to seed addictions: %w", err)
	}
	slog.Info("addictions seeded", "inserted", inserted, "total", len(rows))
	return inserted, nil
}
