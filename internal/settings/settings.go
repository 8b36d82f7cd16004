// Package settings persists user preferences as string key-value pairs and
// exposes the typed settings the pages read.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// KeyAllowDeleteInHome stores whether the home page may delete the shown quote.
const KeyAllowDeleteInHome = "allow_delete_home"

// ErrUnavailable is returned when a preference cannot be read or written.
var ErrUnavailable = errors.New("preference storage unavailable")

// Store is a key-value preference backend. Get reports found=false for a
// key that was never set.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Service reads and writes typed settings on top of a Store
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a settings service
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// AllowDeleteInHome reports whether deleting from the home page is allowed.
// Only the exact value "true" enables it; a missing key means false.
func (s *Service) AllowDeleteInHome(ctx context.Context) (bool, error) {
	value, found, err := s.store.Get(ctx, KeyAllowDeleteInHome)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w: %w", KeyAllowDeleteInHome, ErrUnavailable, err)
	}
	return found && value == "true", nil
}

// SetAllowDeleteInHome persists the allow-delete-in-home setting
func (s *Service) SetAllowDeleteInHome(ctx context.Context, allow bool) error {
	if err := s.store.Set(ctx, KeyAllowDeleteInHome, strconv.FormatBool(allow)); err != nil {
		return fmt.Errorf("failed to save %s: %w: %w", KeyAllowDeleteInHome, ErrUnavailable, err)
	}
	s.logger.Info("preference saved", "key", KeyAllowDeleteInHome, "value", allow)
	return nil
}
