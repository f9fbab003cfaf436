package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type SetAnalysisLanguageSettingsProvider interface {
	UpdateAnalysisField(ctx context.Context, chatID int64, field, rawValue string) error
}

// SetAnalysisLanguage handles /anlang <code>.
func SetAnalysisLanguage(settings SetAnalysisLanguageSettingsProvider) bot.HandlerFunc {
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
			reply("Usage: /anlang <code> (e.g., en, vi, ja)")
			return
		}

		// Only the first word counts, like "/anlang en extra" → "en".
		code := strings.Fields(arg)[0]
		if err := settings.UpdateAnalysisField(ctx, chatID, "language", code); err != nil {
			reply("Usage: /anlang <code> (e.g., en, vi, ja)")
			return
		}

		reply(fmt.Sprintf("analysis language set to %s", code))
	}
}
