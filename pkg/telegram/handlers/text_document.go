package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/i18n"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

var textDocExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
	".srt": {},
	".vtt": {},
}

// IsTextDocument matches documents with a plain-text extension.
func IsTextDocument(update *models.Update) bool {
	msg := update.Message
	if msg == nil || msg.Document == nil {
		return false
	}
	ext := strings.ToLower(path.Ext(msg.Document.FileName))
	_, ok := textDocExtensions[ext]
	return ok
}

// AnalyzeDocument downloads an attached text file and runs text
// intelligence on its contents.
func AnalyzeDocument(settings AnalyzeSettingsProvider, analyzer TextAnalyzer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		msg := update.Message
		chatID := msg.Chat.ID
		topicID := msg.MessageThreadID
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

		data, err := downloadTelegramFile(ctx, b, msg.Document.FileID)
		if err != nil {
			slog.ErrorContext(ctx, "downloading text document", "chatID", chatID, "fileID", msg.Document.FileID, logger.Err(err))
			reply(i18n.T(uiLang, "couldnt_download_file"))
			return
		}

		reply(i18n.T(uiLang, "analyzing_file_text"))

		result, err := analyzer.Analyze(ctx, decodeText(data), settings.AnalysisSettings(ctx, chatID))
		if err != nil {
			slog.ErrorContext(ctx, "analyzing text document", "chatID", chatID, logger.Err(err))
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

// decodeText treats the file as UTF-8 and falls back to Latin-1 when the
// bytes are not valid UTF-8.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}
