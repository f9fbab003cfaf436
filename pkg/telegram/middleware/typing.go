package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Typing shows the typing chat action before a message is handled. This bot
// only handles plain messages, so anything else passes through untouched.
func Typing(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			slog.WarnContext(ctx, "Received unknown update type", "update", update)
			next(ctx, b, update)
			return
		}

		b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID:          update.Message.Chat.ID,
			MessageThreadID: update.Message.MessageThreadID,
			Action:          models.ChatActionTyping,
		})

		next(ctx, b, update)
	}
}
