package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type AnalysisStatusSettingsProvider interface {
	AnalysisSettings(ctx context.Context, chatID int64) domain.AnalysisSettings
}

// AnalysisStatus handles /anstatus: shows the chat's text intelligence settings.
func AnalysisStatus(settings AnalysisStatusSettingsProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		analysis := settings.AnalysisSettings(ctx, chatID)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: update.Message.MessageThreadID,
			Text: fmt.Sprintf("Text Intelligence settings:\nlanguage: %s\nsummarize: %s\ntopics: %t\nintents: %t\nsentiment: %t",
				analysis.Language, analysis.Summarize, analysis.Topics, analysis.Intents, analysis.Sentiment),
		})
	}
}
