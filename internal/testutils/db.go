package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/graffic/citas-go/internal/config"
	"github.com/graffic/citas-go/internal/storage"
)

// NewTestDBConfig returns a database configuration pointing at a fresh file
// inside the test's temporary directory
func NewTestDBConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "citas_test.db"),
	}
}

// NewTestDB opens a SQLite database in a temporary directory and closes it
// when the test finishes
func NewTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.New(NewTestDBConfig(t))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// StaticOpener returns an opener that always hands out db
func StaticOpener(db *storage.DB) storage.Opener {
	return func(ctx context.Context) (*storage.DB, error) {
		return db, nil
	}
}
