// Package observability provides the process logger and Prometheus metrics.
package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/fars-report/internal/config"
)

// NewLogger builds the process logger from config: a text or JSON handler on
// stderr at the configured level. Stdout stays free for report output.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
