package quotes

import (
	"fmt"
	"strings"
)

// Renderer formats quotes as readable text.
type Renderer struct{}

// NewRenderer creates a new quote renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderOptions contains options for rendering a quote
type RenderOptions struct {
	Quote     *Quote
	IncludeID bool
}

// Render formats a quote as a card: the quoted phrase, then the author.
func (r *Renderer) Render(opts RenderOptions) (string, error) {
	if opts.Quote == nil {
		return "", fmt.Errorf("cannot render nil quote")
	}

	text := fmt.Sprintf("%q\n  - %s", opts.Quote.Phrase, r.authorName(opts.Quote.Author))
	if opts.IncludeID {
		text = fmt.Sprintf("#%d\n%s", opts.Quote.ID, text)
	}
	return text, nil
}

// RenderCard renders a single quote without its ID
func (r *Renderer) RenderCard(quote *Quote) (string, error) {
	return r.Render(RenderOptions{Quote: quote})
}

// RenderList renders one line per quote, prefixed by its ID
func (r *Renderer) RenderList(quotes []Quote) string {
	if len(quotes) == 0 {
		return "No quotes yet."
	}

	lines := make([]string, 0, len(quotes))
	for _, q := range quotes {
		lines = append(lines, fmt.Sprintf("#%d %q - %s", q.ID, q.Phrase, r.authorName(q.Author)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) authorName(author string) string {
	if name := strings.TrimSpace(author); name != "" {
		return name
	}
	return "Unknown"
}
