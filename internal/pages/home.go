package pages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graffic/citas-go/internal/quotes"
)

// HomeView is what the home screen shows. Quote is nil when there are no quotes.
type HomeView struct {
	Quote       *quotes.Quote
	AllowDelete bool
}

// Home shows a random quote and, when allowed, lets the user delete it
type Home struct {
	quotes   QuoteStore
	settings Preferences
	logger   *slog.Logger
}

// NewHome creates the home page controller
func NewHome(store QuoteStore, settings Preferences, logger *slog.Logger) *Home {
	return &Home{quotes: store, settings: settings, logger: logger}
}

// Enter prepares the store, picks a random quote and reads the delete setting
func (h *Home) Enter(ctx context.Context) (HomeView, error) {
	if err := h.quotes.Initialize(ctx); err != nil {
		return HomeView{}, err
	}
	return h.load(ctx)
}

// Delete removes the shown quote and picks a new one. It is refused while
// the allow-delete-in-home setting is off.
func (h *Home) Delete(ctx context.Context, id int64) (HomeView, error) {
	allow, err := h.settings.AllowDeleteInHome(ctx)
	if err != nil {
		return HomeView{}, err
	}
	if !allow {
		return HomeView{}, ErrDeleteNotAllowed
	}

	if err := h.quotes.DeleteByID(ctx, id); err != nil {
		return HomeView{}, fmt.Errorf("failed to delete quote %d: %w", id, err)
	}
	h.logger.Info("quote deleted from home", "quote_id", id)

	return h.load(ctx)
}

func (h *Home) load(ctx context.Context) (HomeView, error) {
	quote, err := h.quotes.Random(ctx)
	if err != nil {
		return HomeView{}, fmt.Errorf("failed to get random quote: %w", err)
	}

	allow, err := h.settings.AllowDeleteInHome(ctx)
	if err != nil {
		return HomeView{}, err
	}

	return HomeView{Quote: quote, AllowDelete: allow}, nil
}
