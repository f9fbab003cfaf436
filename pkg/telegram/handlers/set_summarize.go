package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type SetSummarizeSettingsProvider interface {
	UpdateAnalysisField(ctx context.Context, chatID int64, field, rawValue string) error
}

// SetSummarize handles /summarize <off|v2>.
func SetSummarize(settings SetSummarizeSettingsProvider) bot.HandlerFunc {
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
		if err := settings.UpdateAnalysisField(ctx, chatID, "summarize", arg); err != nil {
			reply("Usage: /summarize <off|v2>")
			return
		}

		reply(fmt.Sprintf("summarize set to %s", strings.ToLower(arg)))
	}
}
