package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

type AdminStatusProvider interface {
	StoreEnabled() bool
	StoreCount(ctx context.Context) (int, error)
}

// AdminStatus handles /adminstatus: reports whether settings persistence is
// active and how many chats have saved settings.
func AdminStatus(adminID int64, settings AdminStatusProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if !isAdmin(update, adminID) {
			return
		}

		chatID := update.Message.Chat.ID
		reply := func(text string) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: update.Message.MessageThreadID,
				Text:            text,
			})
		}

		if !settings.StoreEnabled() {
			reply("Storage: disabled (settings are in-memory only)")
			return
		}

		count, err := settings.StoreCount(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "counting saved settings", logger.Err(err))
			reply("Storage: enabled, but the row count query failed")
			return
		}

		reply(fmt.Sprintf("Storage: enabled\nChats with saved settings: %d", count))
	}
}
