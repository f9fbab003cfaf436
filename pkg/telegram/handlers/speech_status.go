package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type SpeechStatusSettingsProvider interface {
	SpeechSettings(ctx context.Context, chatID int64) domain.SpeechSettings
}

// SpeechStatus handles /status: shows the chat's speech recognition settings.
func SpeechStatus(settings SpeechStatusSettingsProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		speech := settings.SpeechSettings(ctx, chatID)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: update.Message.MessageThreadID,
			Text: fmt.Sprintf("language: %s\ndetect_language: %t\nmodel: %s",
				speech.Language,
				speech.DetectLanguage,
				lo.Ternary(speech.Model != "", speech.Model, "(default)")),
		})
	}
}
