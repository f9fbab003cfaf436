package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/i18n"
)

type StartUILanguageProvider interface {
	UILanguage(ctx context.Context, chatID int64) string
}

func Start(settings StartUILanguageProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: update.Message.MessageThreadID,
			Text:            i18n.T(settings.UILanguage(ctx, chatID), "start_message"),
		})
	}
}
