package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestNew_InstallsDefault(t *testing.T) {
	logger := New("debug")

	assert.Same(t, logger, slog.Default())
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewWithHandler_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithHandler(slog.NewJSONHandler(&buf, nil))

	logger.Info("submission stored", slog.Uint64("id", 42))

	assert.Contains(t, buf.String(), `"msg":"submission stored"`)
	assert.Contains(t, buf.String(), `"id":42`)
}
