package pages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graffic/citas-go/internal/quotes"
)

// Manage lists, adds and removes quotes
type Manage struct {
	quotes QuoteStore
	logger *slog.Logger
}

// NewManage creates the quote management page controller
func NewManage(store QuoteStore, logger *slog.Logger) *Manage {
	return &Manage{quotes: store, logger: logger}
}

// Enter prepares the store and loads every quote
func (m *Manage) Enter(ctx context.Context) ([]quotes.Quote, error) {
	if err := m.quotes.Initialize(ctx); err != nil {
		return nil, err
	}
	return m.reload(ctx)
}

// Save validates the form, stores the quote and returns the updated list.
// An invalid form returns FormErrors and stores nothing.
func (m *Manage) Save(ctx context.Context, form QuoteForm) ([]quotes.Quote, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	quote, err := m.quotes.Add(ctx, form.Phrase, form.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	m.logger.Info("quote saved", "quote_id", quote.ID)

	return m.reload(ctx)
}

// Remove deletes a quote and returns the updated list
func (m *Manage) Remove(ctx context.Context, id int64) ([]quotes.Quote, error) {
	if err := m.quotes.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete quote %d: %w", id, err)
	}
	m.logger.Info("quote deleted", "quote_id", id)

	return m.reload(ctx)
}

func (m *Manage) reload(ctx context.Context) ([]quotes.Quote, error) {
	list, err := m.quotes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}
	return list, nil
}
