// Package middleware provides bot middleware applied before command handlers.
package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ChatFilter drops updates from chats outside allowedChatIDs. Every chat
// shares the same quote collection, so an empty list allows all chats.
// With autoLeave the bot also leaves chats it is not allowed in.
func ChatFilter(allowedChatIDs []int64, autoLeave bool, logger *slog.Logger) bot.Middleware {
	allowed := make(map[int64]struct{}, len(allowedChatIDs))
	for _, id := range allowedChatIDs {
		allowed[id] = struct{}{}
	}
	allowAll := len(allowed) == 0

	logger.Info("chat filter configured", "allow_all", allowAll, "auto_leave", autoLeave, "chat_ids", allowedChatIDs)

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			chatID := chatIDOf(update)
			if chatID == 0 {
				return
			}

			if _, ok := allowed[chatID]; !allowAll && !ok {
				logger.Info("ignoring update from unauthorized chat", "chat_id", chatID)
				if autoLeave && b != nil {
					leave(ctx, b, chatID, logger)
				}
				return
			}

			next(ctx, b, update)
		}
	}
}

func leave(ctx context.Context, b *bot.Bot, chatID int64, logger *slog.Logger) {
	logger.Info("leaving unauthorized chat", "chat_id", chatID)
	if _, err := b.LeaveChat(ctx, &bot.LeaveChatParams{ChatID: chatID}); err != nil {
		logger.Error("failed to leave chat", "chat_id", chatID, "error", err)
	}
}

// chatIDOf returns the chat an update belongs to, or 0 when it has none
func chatIDOf(update *models.Update) int64 {
	if update == nil {
		return 0
	}

	var chat *models.Chat
	switch {
	case update.Message != nil:
		chat = &update.Message.Chat
	case update.EditedMessage != nil:
		chat = &update.EditedMessage.Chat
	case update.ChannelPost != nil:
		chat = &update.ChannelPost.Chat
	case update.EditedChannelPost != nil:
		chat = &update.EditedChannelPost.Chat
	case update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil:
		chat = &update.CallbackQuery.Message.Message.Chat
	case update.MyChatMember != nil:
		chat = &update.MyChatMember.Chat
	case update.ChatMember != nil:
		chat = &update.ChatMember.Chat
	case update.ChatJoinRequest != nil:
		chat = &update.ChatJoinRequest.Chat
	case update.MessageReaction != nil:
		chat = &update.MessageReaction.Chat
	}

	if chat == nil {
		return 0
	}
	return chat.ID
}
