package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "json",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, `"msg":"catalog ready"`)
				assert.Contains(t, out, `"service_name":"recipe-service"`)
				assert.Contains(t, out, `"service_version":"1.2.0"`)
			},
		},
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, `msg="catalog ready"`)
				assert.Contains(t, out, "service_name=recipe-service")
			},
		},
		{
			format: "pretty",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "catalog ready")
				assert.NotContains(t, out, `"msg"`)
			},
		},
		{
			format: "unknown falls back to json",
			check: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "{"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{
				Level:   "info",
				Format:  strings.Fields(tt.format)[0],
				Service: "recipe-service",
				Version: "1.2.0",
			}, &buf)

			logger.Info("catalog ready", slog.Int("recipes", 5))
			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		level    string
		visible  []slog.Level
		filtered []slog.Level
	}{
		{"trace", []slog.Level{LevelTrace, slog.LevelDebug}, nil},
		{"debug", []slog.Level{slog.LevelDebug}, []slog.Level{LevelTrace}},
		{"", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
		{"WARNING", []slog.Level{slog.LevelWarn}, []slog.Level{slog.LevelInfo}},
		{"error", []slog.Level{slog.LevelError}, []slog.Level{slog.LevelWarn}},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&Config{Level: tt.level}, &buf)

			for _, l := range tt.visible {
				buf.Reset()
				logger.Log(context.Background(), l, "seen")
				assert.NotEmpty(t, buf.String(), "level %v", l)
			}

			for _, l := range tt.filtered {
				buf.Reset()
				logger.Log(context.Background(), l, "hidden")
				assert.Empty(t, buf.String(), "level %v", l)
			}
		})
	}
}

func TestNewWithWriter_RollingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe-service.log")

	var console bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "text",
		File: FileConfig{
			Enabled:    true,
			Path:       path,
			Level:      "trace",
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &console)

	logger.Log(context.Background(), LevelTrace, "translated feed page", slog.String("api_key", "k-123456"))
	logger.Info("catalog ready")

	assert.NotContains(t, console.String(), "translated feed page", "console keeps its own level")
	assert.Contains(t, console.String(), "catalog ready")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"translated feed page"`)
	assert.Contains(t, string(content), `"msg":"catalog ready"`)
	assert.NotContains(t, string(content), "k-123456")
}

func TestFanout(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer

	handler := fanout{
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}

	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, handler.Enabled(context.Background(), LevelTrace))

	logger := slog.New(handler).With(slog.String("component", "seeds")).WithGroup("feed")
	logger.Debug("page fetched", slog.Int("page", 1))
	logger.Warn("page skipped", slog.Int("page", 2))

	assert.Contains(t, debugBuf.String(), "page fetched")
	assert.Contains(t, debugBuf.String(), "page skipped")
	assert.NotContains(t, warnBuf.String(), "page fetched")
	assert.Contains(t, warnBuf.String(), `"component":"seeds"`)
	assert.Contains(t, warnBuf.String(), `"feed":{"page":2}`)
}

func TestCharmLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want log.Level
	}{
		{LevelTrace, log.DebugLevel},
		{slog.LevelDebug, log.DebugLevel},
		{slog.LevelInfo, log.InfoLevel},
		{slog.LevelWarn, log.WarnLevel},
		{slog.LevelError, log.ErrorLevel},
		{slog.LevelError + 4, log.ErrorLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, charmLevel(tt.in), tt.in.String())
	}
}
