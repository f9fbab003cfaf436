package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const adminHelp = `Admin commands:
/adminstatus - storage status and saved chat count
/adminget [chat_id] - show settings for a chat
/adminset <chat_id> <stt|ti>.<field> <value> - change a setting for a chat

Fields: stt.language, stt.detect_language, stt.model,
ti.language, ti.summarize, ti.topics, ti.intents, ti.sentiment`

func isAdmin(update *models.Update, adminID int64) bool {
	if adminID == 0 || update.Message == nil || update.Message.From == nil {
		return false
	}
	return update.Message.From.ID == adminID
}

// Admin handles /admin: lists the admin command surface.
func Admin(adminID int64) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if !isAdmin(update, adminID) {
			return
		}

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          update.Message.Chat.ID,
			MessageThreadID: update.Message.MessageThreadID,
			Text:            adminHelp,
		})
	}
}
