package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/graffic/citas-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
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
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	assert.Equal(t, charmlog.DebugLevel, slogToCharmLevel(slog.Level(-8)))
	assert.Equal(t, charmlog.DebugLevel, slogToCharmLevel(slog.LevelDebug))
	assert.Equal(t, charmlog.InfoLevel, slogToCharmLevel(slog.LevelInfo))
	assert.Equal(t, charmlog.WarnLevel, slogToCharmLevel(slog.LevelWarn))
	assert.Equal(t, charmlog.ErrorLevel, slogToCharmLevel(slog.LevelError))
	assert.Equal(t, charmlog.ErrorLevel, slogToCharmLevel(slog.Level(12)))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(&config.LogConfig{Level: "info", Format: "json"}, &buf)
	defer closer.Close()

	logger.Info("quote added", "quote_id", 7)
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"msg":"quote added"`)
	assert.Contains(t, out, `"quote_id":7`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_TextFormatRedactsToken(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(&config.LogConfig{Level: "debug", Format: "text"}, &buf)
	defer closer.Close()

	logger.Info("loaded config", "telegram", config.TelegramConfig{Token: "123456:super-secret"})

	out := buf.String()
	assert.Contains(t, out, "loaded config")
	assert.NotContains(t, out, "super-secret")
}

func TestNew_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(&config.LogConfig{Level: "warn", Format: "pretty"}, &buf)
	defer closer.Close()

	logger.Info("not shown")
	logger.Warn("shown")

	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.NotContains(t, out, "not shown")
}

func TestNew_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citas.log")
	var buf bytes.Buffer
	logger, closer := New(&config.LogConfig{Level: "info", Format: "text", File: path}, &buf)

	logger.Info("persisted line")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "persisted line")
	assert.Contains(t, buf.String(), "persisted line")
}
