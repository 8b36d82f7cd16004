package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/graffic/citas-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, name string) *config.DatabaseConfig {
	return &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), name)}
}

func TestNew_CreatesDatabaseFile(t *testing.T) {
	cfg := testConfig(t, "citas.db")

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(cfg.Path)
	assert.NoError(t, err)
}

func TestNew_CreatesParentDirectory(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "nested", "dir", "citas.db")}

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(cfg.Path))
	assert.NoError(t, err)
}

func TestNew_SingleConnection(t *testing.T) {
	db, err := New(testConfig(t, "citas.db"))
	require.NoError(t, err)
	defer db.Close()

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNew_FailsOnDirectory(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Path: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestNewOpener_HonoursCancelledContext(t *testing.T) {
	open := NewOpener(testConfig(t, "citas.db"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserVersion(t *testing.T) {
	db, err := New(testConfig(t, "citas.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	version, err := db.UserVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, db.SetUserVersion(ctx, 3))

	version, err = db.UserVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
}

func TestClose(t *testing.T) {
	db, err := New(testConfig(t, "citas.db"))
	require.NoError(t, err)

	require.NoError(t, db.Close())

	_, err = db.UserVersion(context.Background())
	assert.Error(t, err)
}
