package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/graffic/citas-go/internal/pages"
	"github.com/graffic/citas-go/internal/quotes"
)

const addQuoteUsage = "Usage: /addquote <phrase> | <author>, or reply to a message with /addquote"

// AddQuoteCommand handles /addquote
type AddQuoteCommand struct {
	manage *pages.Manage
	sender Sender
}

func (c *AddQuoteCommand) Command() string { return "addquote" }
func (c *AddQuoteCommand) Description() string {
	return "Add a quote: <phrase> | <author>, or reply to a message"
}

// Handle stores a quote given as "phrase | author", or the replied-to
// message attributed to its sender
func (c *AddQuoteCommand) Handle(ctx context.Context, msg *models.Message, args string) error {
	form, ok := quoteForm(msg, args)
	if !ok {
		return reply(ctx, c.sender, msg, addQuoteUsage)
	}

	list, err := c.manage.Save(ctx, form)
	var formErrors pages.FormErrors
	if errors.As(err, &formErrors) {
		return reply(ctx, c.sender, msg, "Could not add quote: "+strings.Join(formErrors.Messages(), "; "))
	}
	if err != nil {
		return err
	}

	return reply(ctx, c.sender, msg, fmt.Sprintf("Quote added. There are %d quotes now.", len(list)))
}

func quoteForm(msg *models.Message, args string) (pages.QuoteForm, bool) {
	if args == "" {
		if msg.ReplyToMessage == nil || msg.ReplyToMessage.Text == "" {
			return pages.QuoteForm{}, false
		}
		return pages.QuoteForm{
			Phrase: msg.ReplyToMessage.Text,
			Author: displayName(msg.ReplyToMessage.From),
		}, true
	}

	i := strings.LastIndex(args, "|")
	if i < 0 {
		return pages.QuoteForm{}, false
	}
	return pages.QuoteForm{Phrase: args[:i], Author: args[i+1:]}, true
}

func displayName(user *models.User) string {
	if user == nil {
		return ""
	}
	if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
		return name
	}
	return user.Username
}

// ListQuotesCommand handles /quotes
type ListQuotesCommand struct {
	manage   *pages.Manage
	sender   Sender
	renderer *quotes.Renderer
}

func (c *ListQuotesCommand) Command() string     { return "quotes" }
func (c *ListQuotesCommand) Description() string { return "List every quote" }

func (c *ListQuotesCommand) Handle(ctx context.Context, msg *models.Message, args string) error {
	list, err := c.manage.Enter(ctx)
	if err != nil {
		return err
	}
	return reply(ctx, c.sender, msg, c.renderer.RenderList(list))
}

// DelQuoteCommand handles /delquote <id>
type DelQuoteCommand struct {
	manage *pages.Manage
	sender Sender
}

func (c *DelQuoteCommand) Command() string     { return "delquote" }
func (c *DelQuoteCommand) Description() string { return "Delete a quote by id" }

func (c *DelQuoteCommand) Handle(ctx context.Context, msg *models.Message, args string) error {
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		return reply(ctx, c.sender, msg, "Usage: /delquote <id>")
	}

	list, err := c.manage.Remove(ctx, id)
	if err != nil {
		return err
	}
	return reply(ctx, c.sender, msg, fmt.Sprintf("Quote #%d deleted. There are %d quotes now.", id, len(list)))
}
