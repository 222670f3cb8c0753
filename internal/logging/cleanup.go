package logging

import (
	"context"
	"log/slog"
	"time"
)

const Retention = 30 * 24 * time.Hour

// StartCleanup deletes system logs older than Retention once a day until ctx
// is cancelled.
func StartCleanup(ctx context.Context, store LogStore) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				purge(ctx, store, time.Now().Add(-Retention))
			case <-ctx.Done():
				return
			}
		}
	}()
}

func purge(ctx context.Context, store LogStore, cutoff time.Time) {
	deleted, err := store.PurgeSystemLogs(ctx, cutoff)
	if err != nil {
		slog.Error("log cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("log cleanup completed", "deleted", deleted)
	}
}
