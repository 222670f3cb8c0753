package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog logger: JSON to stdout, plus any extra
// handlers (such as a PGHandler) fanned out through a MultiHandler.
func Setup(debug bool, extra ...slog.Handler) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	if len(extra) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{handler}, extra...)...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
