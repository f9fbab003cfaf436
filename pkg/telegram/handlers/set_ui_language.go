package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/i18n"
)

type SetUILanguageSettingsProvider interface {
	UILanguage(ctx context.Context, chatID int64) string
	SetUILanguage(ctx context.Context, chatID int64, lang string)
}

func SetUILanguage(settings SetUILanguageSettingsProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		topicID := update.Message.MessageThreadID

		lang := i18n.ParseUILanguage(commandArg(update.Message.Text))
		if lang == "" {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            i18n.T(settings.UILanguage(ctx, chatID), "language_usage"),
			})
			return
		}

		settings.SetUILanguage(ctx, chatID, lang)

		// Confirm in the language just selected.
		key := "ui_lang_set_en"
		if lang == domain.UILanguageVI {
			key = "ui_lang_set_vi"
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Text:            i18n.T(lang, key),
		})
	}
}
