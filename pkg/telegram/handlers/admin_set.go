package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

type AdminSetProvider interface {
	UpdateField(ctx context.Context, chatID int64, path, value string) error
}

const adminSetUsage = "Usage: /adminset <chat_id> <stt|ti>.<field> <value>"

// AdminSet handles /adminset <chat_id> <group>.<field> <value>.
func AdminSet(adminID int64, settings AdminSetProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if !isAdmin(update, adminID) {
			return
		}

		reply := func(text string) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          update.Message.Chat.ID,
				MessageThreadID: update.Message.MessageThreadID,
				Text:            text,
			})
		}

		targetID, path, value, err := parseAdminSetArgs(commandArg(update.Message.Text))
		if err != nil {
			reply(adminSetUsage)
			return
		}

		if err := settings.UpdateField(ctx, targetID, path, value); err != nil {
			slog.ErrorContext(ctx, "admin setting update",
				"targetChatID", targetID, "path", path, "value", value, logger.Err(err))

			reply(adminSetFailureText(err))
			return
		}

		reply(fmt.Sprintf("Chat %d: %s set to %s", targetID, path, value))
	}
}

// adminSetFailureText turns an update failure into the reply. Validation
// rejections surface their hint; anything else stays generic, the detail goes
// to the log only.
func adminSetFailureText(err error) string {
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		return "Update failed."
	}

	hint := vErr.Hint
	if hint == "" {
		hint = vErr.Error()
	}
	return hint + "\n" + adminSetUsage
}

func parseAdminSetArgs(arg string) (chatID int64, path, value string, err error) {
	parts := strings.Fields(arg)
	if len(parts) < 3 {
		return 0, "", "", fmt.Errorf("expected 3 arguments, got %d", len(parts))
	}

	chatID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", "", fmt.Errorf("parsing chat id %q: %w", parts[0], err)
	}

	// The value may contain spaces, e.g. a free-form model name.
	return chatID, parts[1], strings.Join(parts[2:], " "), nil
}
