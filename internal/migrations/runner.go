package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// Execer runs one SQL statement.
type Execer interface {
	Exec(ctx context.Context, sql string) error
}

type gormExecer struct {
	db *gorm.DB
}

// NewGormExecer runs statements directly on the pool, outside any transaction.
func NewGormExecer(db *gorm.DB) Execer {
	return &gormExecer{db: db}
}

func (e *gormExecer) Exec(ctx context.Context, sql string) error {
	return e.db.WithContext(ctx).Exec(sql).Error
}

// Run applies the statements of script in order and stops at the first
// failure. Statements applied before the failure are not rolled back.
func Run(ctx context.Context, ex Execer, script Script) error {
	start := time.Now()
	slog.Info("migration started", "script", script.Name, "statements", len(script.Statements))

	for i, stmt := range script.Statements {
		if err := ex.Exec(ctx, stmt.SQL); err != nil {
			slog.Error("migration statement failed",
				"script", script.Name,
				"statement", stmt.Name,
				"index", i,
				"error", err,
			)
			return fmt.Errorf("migration %s: statement %d (%s): %w", script.Name, i, stmt.Name, err)
		}
		slog.Debug("migration statement applied", "script", script.Name, "statement", stmt.Name)
	}

	slog.Info("migration completed", "script", script.Name, "duration_ms", time.Since(start).Milliseconds())
	return nil
}
