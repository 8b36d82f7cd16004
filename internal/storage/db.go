package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/graffic/citas-go/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure Go SQLite engine, registered as the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// driverName selects modernc.org/sqlite instead of the cgo mattn driver.
const driverName = "sqlite"

// DB holds the database connection
type DB struct {
	*gorm.DB
}

// Opener opens a database connection on demand
type Opener func(ctx context.Context) (*DB, error)

// NewOpener returns an Opener for the configured database file
func NewOpener(cfg *config.DatabaseConfig) Opener {
	return func(ctx context.Context) (*DB, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return New(cfg)
	}
}

// New opens (creating it if needed) the SQLite database file
func New(cfg *config.DatabaseConfig) (*DB, error) {
	return NewWithLogger(cfg, logger.Silent)
}

// NewWithLogger opens the database with a custom gorm logger level
func NewWithLogger(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: driverName,
		DSN:        cfg.DSN(),
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// Single owner, single connection.
	sqlDB.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// AutoMigrate runs auto-migration for the given models
func (db *DB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

// UserVersion reads SQLite's user_version pragma
func (db *DB) UserVersion(ctx context.Context) (int, error) {
	var version int
	if err := db.DB.WithContext(ctx).Raw("PRAGMA user_version").Row().Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion writes SQLite's user_version pragma
func (db *DB) SetUserVersion(ctx context.Context, version int) error {
	// Pragmas take no bound parameters.
	if err := db.DB.WithContext(ctx).Exec(fmt.Sprintf("PRAGMA user_version = %d", version)).Error; err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
