package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/i18n"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

type AnalyzeSettingsProvider interface {
	UILanguage(ctx context.Context, chatID int64) string
	AnalysisSettings(ctx context.Context, chatID int64) domain.AnalysisSettings
}

type TextAnalyzer interface {
	Available() bool
	Analyze(ctx context.Context, text string, analysis domain.AnalysisSettings) ([]byte, error)
}

// AnalyzeText handles /analyze <text>: runs text intelligence and replies
// with an analysis.json document.
func AnalyzeText(settings AnalyzeSettingsProvider, analyzer TextAnalyzer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		topicID := update.Message.MessageThreadID
		uiLang := settings.UILanguage(ctx, chatID)

		reply := func(text string) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            text,
			})
		}

		if !analyzer.Available() {
			reply(i18n.T(uiLang, "analyze_requires_upgrade"))
			return
		}

		content := commandArg(update.Message.Text)
		if content == "" {
			reply("Usage: /analyze <text> or upload a .txt/.md/.srt/.vtt file")
			return
		}

		reply(i18n.T(uiLang, "analyzing_text"))

		result, err := analyzer.Analyze(ctx, content, settings.AnalysisSettings(ctx, chatID))
		if err != nil {
			slog.ErrorContext(ctx, "analyzing text", "chatID", chatID, logger.Err(err))
			reply(fmt.Sprintf("Deepgram analyze error: %s", err))
			return
		}

		b.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Document: &models.InputFileUpload{
				Filename: "analysis.json",
				Data:     bytes.NewReader(result),
			},
			Caption: "Text Intelligence result",
		})
	}
}
