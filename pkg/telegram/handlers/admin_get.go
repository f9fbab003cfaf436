package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type AdminGetProvider interface {
	SpeechSettings(ctx context.Context, chatID int64) domain.SpeechSettings
	AnalysisSettings(ctx context.Context, chatID int64) domain.AnalysisSettings
}

// AdminGet handles /adminget [chat_id]: dumps the effective settings for a
// chat, defaulting to the current one.
func AdminGet(adminID int64, settings AdminGetProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if !isAdmin(update, adminID) {
			return
		}

		chatID := update.Message.Chat.ID
		reply := func(text string) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: update.Message.MessageThreadID,
				Text:            text,
			})
		}

		targetID := chatID
		if arg := commandArg(update.Message.Text); arg != "" {
			id, err := strconv.ParseInt(strings.Fields(arg)[0], 10, 64)
			if err != nil {
				reply("Usage: /adminget [chat_id]")
				return
			}
			targetID = id
		}

		speech := settings.SpeechSettings(ctx, targetID)
		analysis := settings.AnalysisSettings(ctx, targetID)

		reply(fmt.Sprintf(`Settings for chat %d:
stt.language: %s
stt.detect_language: %t
stt.model: %s
ti.language: %s
ti.summarize: %s
ti.topics: %t
ti.intents: %t
ti.sentiment: %t`,
			targetID,
			speech.Language,
			speech.DetectLanguage,
			lo.Ternary(speech.Model != "", speech.Model, "(default)"),
			analysis.Language,
			analysis.Summarize,
			analysis.Topics,
			analysis.Intents,
			analysis.Sentiment,
		))
	}
}
