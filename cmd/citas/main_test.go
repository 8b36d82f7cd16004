package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/graffic/citas-go/internal/config"
	"github.com/graffic/citas-go/internal/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, backend string) *app {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path:        filepath.Join(dir, "citas.db"),
			BusyTimeout: time.Second,
		},
		Preferences: config.PreferencesConfig{
			Backend: backend,
			Path:    filepath.Join(dir, "preferences.yaml"),
		},
	}

	a, err := newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() {
		a.Close()
	})
	return a
}

func cli(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd, rest := parseCommand(args)
	err := runCLI(context.Background(), a, cmd, rest, &out)
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	cmd, args := parseCommand(nil)
	assert.Equal(t, "home", cmd)
	assert.Empty(t, args)

	cmd, args = parseCommand([]string{"add", "Carpe diem.", "Horace"})
	assert.Equal(t, "add", cmd)
	assert.Equal(t, []string{"Carpe diem.", "Horace"}, args)
}

func TestCLI_Flow(t *testing.T) {
	for _, backend := range []string{"memory", "file", "database"} {
		t.Run(backend, func(t *testing.T) {
			a := newTestApp(t, backend)

			out, err := cli(t, a, "home")
			require.NoError(t, err)
			assert.Equal(t, "No quotes yet.\n\nDelete from home: off\n", out)

			out, err = cli(t, a, "add", "Carpe diem.", "Horace")
			require.NoError(t, err)
			assert.Equal(t, "Quote added. There are 1 quotes now.\n", out)

			out, err = cli(t, a, "list")
			require.NoError(t, err)
			assert.Equal(t, "#1 \"Carpe diem.\" - Horace\n", out)

			out, err = cli(t, a, "random")
			require.NoError(t, err)
			assert.Equal(t, "\"Carpe diem.\"\n  - Horace\n", out)

			out, err = cli(t, a, "settings", "on")
			require.NoError(t, err)
			assert.Equal(t, "Delete from home: on\n", out)

			out, err = cli(t, a, "home")
			require.NoError(t, err)
			assert.Equal(t, "#1\n\"Carpe diem.\"\n  - Horace\n\nDelete from home: on\n", out)

			out, err = cli(t, a, "delete", "1")
			require.NoError(t, err)
			assert.Equal(t, "Quote #1 deleted.\n", out)

			out, err = cli(t, a, "list")
			require.NoError(t, err)
			assert.Equal(t, "No quotes yet.\n", out)
		})
	}
}

func TestCLI_AddInvalidForm(t *testing.T) {
	a := newTestApp(t, "memory")

	out, err := cli(t, a, "add", "Hey", "B")
	assert.ErrorIs(t, err, pages.ErrInvalidForm)
	assert.Equal(t, "author must be at least 2 characters\nphrase must be at least 5 characters\n", out)
}

func TestCLI_UsageErrors(t *testing.T) {
	a := newTestApp(t, "memory")

	tests := [][]string{
		{"add", "only phrase"},
		{"delete"},
		{"delete", "one"},
		{"settings", "maybe"},
		{"frobnicate"},
	}

	for _, args := range tests {
		_, err := cli(t, a, args...)
		assert.ErrorIs(t, err, errUsage, "args %v", args)
	}
}
