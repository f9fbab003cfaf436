package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type SetModelSettingsProvider interface {
	UpdateSpeechField(ctx context.Context, chatID int64, field, rawValue string) error
}

// SetModel handles /model <name>; a bare /model resets to the provider default.
func SetModel(settings SetModelSettingsProvider) bot.HandlerFunc {
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

		model := commandArg(update.Message.Text)
		if err := settings.UpdateSpeechField(ctx, chatID, "model", model); err != nil {
			reply(fmt.Sprintf("Usage: /model <name> (%s)", err))
			return
		}

		if model == "" {
			reply("Model reset to default.")
			return
		}
		reply(fmt.Sprintf("Model set to %s.", model))
	}
}
