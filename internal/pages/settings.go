package pages

import (
	"context"
	"log/slog"
)

// Settings shows and toggles the allow-delete-in-home preference
type Settings struct {
	settings Preferences
	logger   *slog.Logger
}

// NewSettings creates the settings page controller
func NewSettings(settings Preferences, logger *slog.Logger) *Settings {
	return &Settings{settings: settings, logger: logger}
}

// Enter returns the current allow-delete-in-home value
func (s *Settings) Enter(ctx context.Context) (bool, error) {
	return s.settings.AllowDeleteInHome(ctx)
}

// Toggle saves a new value and returns what is now persisted
func (s *Settings) Toggle(ctx context.Context, allow bool) (bool, error) {
	if err := s.settings.SetAllowDeleteInHome(ctx, allow); err != nil {
		return false, err
	}
	return s.settings.AllowDeleteInHome(ctx)
}
