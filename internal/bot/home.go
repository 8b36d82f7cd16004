package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot/models"
	"github.com/graffic/citas-go/internal/pages"
	"github.com/graffic/citas-go/internal/quotes"
)

const noQuotesText = "No quotes yet. Add some with /addquote!"

// RQuoteCommand handles /rquote
type RQuoteCommand struct {
	home     *pages.Home
	sender   Sender
	renderer *quotes.Renderer
}

func (c *RQuoteCommand) Command() string     { return "rquote" }
func (c *RQuoteCommand) Description() string { return "Show a random quote" }

// Handle sends a random quote. The id is shown while deleting from home
// is enabled so it can be passed to /delhome.
func (c *RQuoteCommand) Handle(ctx context.Context, msg *models.Message, args string) error {
	view, err := c.home.Enter(ctx)
	if err != nil {
		return err
	}

	text, err := renderHome(c.renderer, view)
	if err != nil {
		return err
	}
	return reply(ctx, c.sender, msg, text)
}

// DelHomeCommand handles /delhome <id>
type DelHomeCommand struct {
	home     *pages.Home
	sender   Sender
	renderer *quotes.Renderer
}

func (c *DelHomeCommand) Command() string { return "delhome" }
func (c *DelHomeCommand) Description() string {
	return "Delete the quote on screen and show another"
}

// Handle deletes a quote from the home card, honouring the allow-delete setting
func (c *DelHomeCommand) Handle(ctx context.Context, msg *models.Message, args string) error {
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		return reply(ctx, c.sender, msg, "Usage: /delhome <id>")
	}

	view, err := c.home.Delete(ctx, id)
	if errors.Is(err, pages.ErrDeleteNotAllowed) {
		return reply(ctx, c.sender, msg, "Deleting from home is disabled. Enable it with /homedelete on")
	}
	if err != nil {
		return err
	}

	text, err := renderHome(c.renderer, view)
	if err != nil {
		return err
	}
	return reply(ctx, c.sender, msg, fmt.Sprintf("Quote #%d deleted.\n\n%s", id, text))
}

func renderHome(renderer *quotes.Renderer, view pages.HomeView) (string, error) {
	if view.Quote == nil {
		return noQuotesText, nil
	}
	return renderer.Render(quotes.RenderOptions{Quote: view.Quote, IncludeID: view.AllowDelete})
}
