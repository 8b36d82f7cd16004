// Package bot exposes the quote pages as Telegram commands.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/graffic/citas-go/internal/pages"
	"github.com/graffic/citas-go/internal/quotes"
)

// Sender sends messages to a chat. *bot.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Registrar routes message text to handlers. *bot.Bot satisfies it.
type Registrar interface {
	RegisterHandlerRegexp(handlerType bot.HandlerType, re *regexp.Regexp, f bot.HandlerFunc, m ...bot.Middleware) string
}

// Command handles one slash command
type Command interface {
	Handle(ctx context.Context, msg *models.Message, args string) error
	// Command returns the name without the leading slash
	Command() string
	Description() string
}

// Pages groups the page controllers the commands drive
type Pages struct {
	Home     *pages.Home
	Manage   *pages.Manage
	Settings *pages.Settings
}

// Commands builds every command, replying through sender
func Commands(sender Sender, p Pages) []Command {
	renderer := quotes.NewRenderer()
	return []Command{
		&RQuoteCommand{home: p.Home, sender: sender, renderer: renderer},
		&AddQuoteCommand{manage: p.Manage, sender: sender},
		&ListQuotesCommand{manage: p.Manage, sender: sender, renderer: renderer},
		&DelQuoteCommand{manage: p.Manage, sender: sender},
		&HomeDeleteCommand{settings: p.Settings, sender: sender},
		&DelHomeCommand{home: p.Home, sender: sender, renderer: renderer},
	}
}

// Register wires every command into b and returns them
func Register(b *bot.Bot, p Pages, logger *slog.Logger) []Command {
	commands := Commands(b, p)
	RegisterCommands(b, b, commands, logger)
	return commands
}

// RegisterCommands registers a handler per command. Replies to failed
// commands go through sender.
func RegisterCommands(r Registrar, sender Sender, commands []Command, logger *slog.Logger) {
	for _, cmd := range commands {
		pattern := regexp.MustCompile(`^/` + regexp.QuoteMeta(cmd.Command()) + `(@\w+)?(\s|$)`)
		r.RegisterHandlerRegexp(bot.HandlerTypeMessageText, pattern, wrapCommand(cmd, sender, logger))
		logger.Info("registered command", "name", cmd.Command())
	}
}

// BotCommands lists the commands for the Telegram command menu
func BotCommands(commands []Command) []models.BotCommand {
	out := make([]models.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		out = append(out, models.BotCommand{Command: cmd.Command(), Description: cmd.Description()})
	}
	return out
}

func wrapCommand(cmd Command, sender Sender, logger *slog.Logger) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		msg := update.Message
		if msg == nil {
			return
		}

		_, args := splitCommand(msg.Text)
		logger.Info("executing command", "command", cmd.Command(), "chat_id", msg.Chat.ID)

		if err := cmd.Handle(ctx, msg, args); err != nil {
			logger.Error("command handler error", "command", cmd.Command(), "error", err)
			if sendErr := reply(ctx, sender, msg, failureText(err)); sendErr != nil {
				logger.Error("failed to send error reply", "error", sendErr)
			}
		}
	}
}

func failureText(err error) string {
	if errors.Is(err, quotes.ErrStorageUnavailable) || errors.Is(err, quotes.ErrSchemaVersion) {
		return "Quotes are unavailable right now. Try again later."
	}
	return "Something went wrong."
}

// splitCommand splits "/name@bot args" into the name and the trimmed arguments.
// name is empty when text is not a command.
func splitCommand(text string) (name, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}

	head, rest := text[1:], ""
	if i := strings.IndexFunc(head, unicode.IsSpace); i >= 0 {
		head, rest = head[:i], head[i:]
	}
	name, _, _ = strings.Cut(head, "@")
	return name, strings.TrimSpace(rest)
}

func reply(ctx context.Context, sender Sender, msg *models.Message, text string) error {
	_, err := sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		Text:            text,
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
