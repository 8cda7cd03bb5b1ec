// Package observability provides structured logging and Prometheus metrics
// for the converter.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// LogSettings carries the logging fields of the configuration, kept as a
// small local type so this package does not import config.
type LogSettings struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// NewLogger builds a slog.Logger per the configured level and format.
// Unknown values fall back to info/json.
func NewLogger(s LogSettings) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(s.Level) {
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
	if strings.ToLower(s.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
