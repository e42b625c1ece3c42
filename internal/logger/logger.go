// Package logger provides the JSON slog setup shared by the binaries.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON logger at the given level and installs it as the
// slog default. Unknown levels fall back to info.
func New(level string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// NewWithHandler creates a logger with a custom handler, used by tests.
func NewWithHandler(handler slog.Handler) *slog.Logger {
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
