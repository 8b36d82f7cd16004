package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	citasbot "github.com/graffic/citas-go/internal/bot"
	"github.com/graffic/citas-go/internal/bot/middleware"
	"github.com/graffic/citas-go/internal/config"
	"golang.org/x/sync/errgroup"
)

func runBot(ctx context.Context, cfg *config.Config, a *app, logger *slog.Logger) error {
	if cfg.Telegram.Token == "" {
		return errors.New("telegram.token is required to run the bot")
	}

	logger.Info("starting citas bot", "environment", cfg.Environment)

	if err := a.store.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize quote store: %w", err)
	}

	opts := []bot.Option{
		bot.WithMiddlewares(middleware.ChatFilter(cfg.AllowedChatIDs, cfg.AutoLeaveUnauthorized, logger)),
		bot.WithDefaultHandler(defaultHandler(logger)),
	}

	b, err := bot.New(cfg.Telegram.Token, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	commands := citasbot.Register(b, citasbot.Pages{
		Home:     a.pages.home,
		Manage:   a.pages.manage,
		Settings: a.pages.settings,
	}, logger)

	user, err := b.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify bot token: %w", err)
	}

	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: citasbot.BotCommands(commands)}); err != nil {
		logger.Warn("failed to publish command menu", "error", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting bot polling", "username", user.Username)
		b.Start(ctx)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("graceful shutdown completed")
			return nil
		}
		return fmt.Errorf("bot error: %w", err)
	}

	logger.Info("application stopped")
	return nil
}

// defaultHandler logs messages that are not commands
func defaultHandler(logger *slog.Logger) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		logger.Debug("received message", "chat_id", update.Message.Chat.ID)
	}
}
