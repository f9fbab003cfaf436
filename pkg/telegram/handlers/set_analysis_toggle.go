package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type SetAnalysisToggleSettingsProvider interface {
	UpdateAnalysisField(ctx context.Context, chatID int64, field, rawValue string) error
	AnalysisSettings(ctx context.Context, chatID int64) domain.AnalysisSettings
}

// SetAnalysisToggle handles the /topics, /intents and /sentiment boolean
// toggles; field names one of the analysis group's boolean fields.
func SetAnalysisToggle(settings SetAnalysisToggleSettingsProvider, field string) bot.HandlerFunc {
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
		if err := settings.UpdateAnalysisField(ctx, chatID, field, arg); err != nil {
			reply(fmt.Sprintf("Usage: /%s <on|off>", field))
			return
		}

		analysis := settings.AnalysisSettings(ctx, chatID)
		value := map[string]bool{
			"topics":    analysis.Topics,
			"intents":   analysis.Intents,
			"sentiment": analysis.Sentiment,
		}[field]
		reply(fmt.Sprintf("%s set to %t", field, value))
	}
}
