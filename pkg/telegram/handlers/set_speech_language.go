package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/i18n"
)

type SetSpeechLanguageSettingsProvider interface {
	UILanguage(ctx context.Context, chatID int64) string
	SetSpeechLanguage(ctx context.Context, chatID int64, code string) error
	SetDetectLanguage(ctx context.Context, chatID int64, on bool)
}

// SetSpeechLanguage handles /speechlang: a friendly English/Vietnamese/auto
// shortcut over the raw /lang and /detect commands.
func SetSpeechLanguage(settings SetSpeechLanguageSettingsProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		topicID := update.Message.MessageThreadID
		uiLang := settings.UILanguage(ctx, chatID)

		reply := func(key string) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            i18n.T(uiLang, key),
			})
		}

		arg := strings.ToLower(commandArg(update.Message.Text))
		if arg == "" {
			reply("speechlang_usage")
			return
		}

		if arg == "auto" || arg == "detect" {
			settings.SetDetectLanguage(ctx, chatID, true)
			reply("speechlang_set_auto")
			return
		}

		switch i18n.ParseUILanguage(arg) {
		case domain.UILanguageEN:
			_ = settings.SetSpeechLanguage(ctx, chatID, "en-US")
			reply("speechlang_set_en")
		case domain.UILanguageVI:
			_ = settings.SetSpeechLanguage(ctx, chatID, "vi")
			reply("speechlang_set_vi")
		default:
			reply("speechlang_usage")
		}
	}
}
