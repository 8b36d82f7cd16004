package quotes

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/graffic/citas-go/internal/storage"
)

// schemaVersion is stored in SQLite's user_version pragma once the table exists.
const schemaVersion = 1

const createTableSQL = `CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	phrase TEXT NOT NULL,
	author TEXT NOT NULL
)`

// Store handles persistence of quotes to the embedded database.
//
// A Store starts uninitialized; every operation makes it ready first, so
// calling Initialize explicitly is optional. Operations are serialized.
type Store struct {
	open   storage.Opener
	intn   func(n int) int
	logger *slog.Logger

	mu sync.Mutex
	db *storage.DB // nil until ready
}

// Option configures a Store
type Option func(*Store)

// WithRandom replaces the uniform index source used by Random.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *Store) {
		s.intn = intn
	}
}

// WithLogger sets the store logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a quote store that opens its database through open
func NewStore(open storage.Opener, opts ...Option) *Store {
	s := &Store{
		open:   open,
		intn:   rand.Intn,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize opens the database and makes sure the quotes table exists.
// Calling it on a ready store does nothing.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureReady(ctx)
}

// Ready reports whether the store has been initialized
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// ensureReady must be called with s.mu held
func (s *Store) ensureReady(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return storageError("open quote database", err)
	}

	if err := prepareSchema(ctx, db); err != nil {
		db.Close()
		return storageError("prepare quote schema", err)
	}

	s.db = db
	s.logger.Debug("quote store ready", "schema_version", schemaVersion)
	return nil
}

func prepareSchema(ctx context.Context, db *storage.DB) error {
	version, err := db.UserVersion(ctx)
	if err != nil {
		return err
	}
	if version > schemaVersion {
		return fmt.Errorf("%w: database is at version %d, this build supports %d", ErrSchemaVersion, version, schemaVersion)
	}

	if err := db.WithContext(ctx).Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("failed to create quotes table: %w", err)
	}

	if version < schemaVersion {
		return db.SetUserVersion(ctx, schemaVersion)
	}
	return nil
}

// List returns every quote in insertion order. An empty store yields an
// empty slice.
func (s *Store) List(ctx context.Context) ([]Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReady(ctx); err != nil {
		return nil, err
	}
	return s.list(ctx)
}

func (s *Store) list(ctx context.Context) ([]Quote, error) {
	quotes := make([]Quote, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&quotes).Error; err != nil {
		return nil, storageError("list quotes", err)
	}
	return quotes, nil
}

// Add persists a new quote and returns it with its assigned ID.
// Length rules are the caller's concern; only missing fields are rejected.
func (s *Store) Add(ctx context.Context, phrase, author string) (*Quote, error) {
	if phrase == "" {
		return nil, fmt.Errorf("%w: phrase is required", ErrValidationFailed)
	}
	if author == "" {
		return nil, fmt.Errorf("%w: author is required", ErrValidationFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReady(ctx); err != nil {
		return nil, err
	}

	quote := Quote{Phrase: phrase, Author: author}
	if err := s.db.WithContext(ctx).Create(&quote).Error; err != nil {
		return nil, storageError("add quote", err)
	}

	s.logger.Debug("quote added", "quote_id", quote.ID)
	return &quote, nil
}

// DeleteByID removes the quote with the given ID. Deleting an ID that does
// not exist succeeds.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReady(ctx); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Quote{})
	if result.Error != nil {
		return storageError("delete quote", result.Error)
	}

	s.logger.Debug("quote deleted", "quote_id", id, "deleted", result.RowsAffected)
	return nil
}

// Random returns a uniformly chosen quote from the current list, or nil
// when the store is empty. Every call re-reads the table.
func (s *Store) Random(ctx context.Context) (*Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReady(ctx); err != nil {
		return nil, err
	}

	quotes, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, nil
	}

	quote := quotes[s.intn(len(quotes))]
	return &quote, nil
}

// Close releases the database connection. The next operation reopens it.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
