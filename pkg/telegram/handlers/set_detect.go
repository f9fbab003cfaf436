package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type SetDetectSettingsProvider interface {
	UpdateSpeechField(ctx context.Context, chatID int64, field, rawValue string) error
	SpeechSettings(ctx context.Context, chatID int64) domain.SpeechSettings
}

// SetDetect handles /detect <on|off>.
func SetDetect(settings SetDetectSettingsProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		topicID := update.Message.MessageThreadID

		reply := func(text string) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            text,
			})
		}

		arg := commandArg(update.Message.Text)
		if arg == "" {
			reply("Usage: /detect <on|off>")
			return
		}

		if err := settings.UpdateSpeechField(ctx, chatID, "detect_language", arg); err != nil {
			reply("Usage: /detect <on|off>")
			return
		}

		reply(fmt.Sprintf("detect_language set to %t", settings.SpeechSettings(ctx, chatID).DetectLanguage))
	}
}
