// Package pages holds the controllers behind each screen of the app: the
// home card, quote management and settings. Front ends (the CLI and the
// Telegram bot) render what these return.
package pages

import (
	"context"
	"errors"

	"github.com/graffic/citas-go/internal/quotes"
)

var (
	// ErrInvalidForm is wrapped by FormErrors
	ErrInvalidForm = errors.New("invalid quote form")

	// ErrDeleteNotAllowed is returned by Home.Delete while the setting is off
	ErrDeleteNotAllowed = errors.New("deleting quotes from home is disabled")
)

// QuoteStore is the quote persistence the pages depend on
type QuoteStore interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context) ([]quotes.Quote, error)
	Add(ctx context.Context, phrase, author string) (*quotes.Quote, error)
	DeleteByID(ctx context.Context, id int64) error
	Random(ctx context.Context) (*quotes.Quote, error)
}

// Preferences is the settings access the pages depend on
type Preferences interface {
	AllowDeleteInHome(ctx context.Context) (bool, error)
	SetAllowDeleteInHome(ctx context.Context, allow bool) error
}
