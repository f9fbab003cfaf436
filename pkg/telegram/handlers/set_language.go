package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type SetLanguageSettingsProvider interface {
	SetSpeechLanguage(ctx context.Context, chatID int64, code string) error
	SetDetectLanguage(ctx context.Context, chatID int64, on bool)
}

// SetLanguage handles /lang <code|auto>.
func SetLanguage(settings SetLanguageSettingsProvider) bot.HandlerFunc {
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
			reply("Usage: /lang <code|auto>")
			return
		}

		if strings.EqualFold(arg, "auto") {
			settings.SetDetectLanguage(ctx, chatID, true)
			reply("Language detection enabled.")
			return
		}

		if err := settings.SetSpeechLanguage(ctx, chatID, arg); err != nil {
			reply(fmt.Sprintf("Usage: /lang <code|auto> (%s)", err))
			return
		}
		reply(fmt.Sprintf("Language set to %s.", arg))
	}
}
