package handlers

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/i18n"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

type AudioSettingsProvider interface {
	UILanguage(ctx context.Context, chatID int64) string
	SpeechSettings(ctx context.Context, chatID int64) domain.SpeechSettings
}

type AudioTranscriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string, speech domain.SpeechSettings) (string, error)
}

var audioDocExtensions = map[string]struct{}{
	".wav":  {},
	".mp3":  {},
	".m4a":  {},
	".ogg":  {},
	".oga":  {},
	".webm": {},
	".flac": {},
	".aac":  {},
}

// IsAudioMessage matches voice notes, audio files, video notes, and
// documents with a recognized audio extension.
func IsAudioMessage(update *models.Update) bool {
	msg := update.Message
	if msg == nil {
		return false
	}
	if msg.Voice != nil || msg.Audio != nil || msg.VideoNote != nil {
		return true
	}
	if msg.Document != nil {
		ext := strings.ToLower(path.Ext(msg.Document.FileName))
		_, ok := audioDocExtensions[ext]
		return ok
	}
	return false
}

// TranscribeAudio downloads the attached audio, sends it to Deepgram, and
// replies with a .txt transcript document.
func TranscribeAudio(settings AudioSettingsProvider, transcriber AudioTranscriber) bot.HandlerFunc {
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

		fileID, mimeType, fileName := audioSource(msg)
		if fileID == "" {
			return
		}

		reply(i18n.T(uiLang, "transcribing"))

		audio, err := downloadTelegramFile(ctx, b, fileID)
		if err != nil {
			slog.ErrorContext(ctx, "downloading audio file", "chatID", chatID, "fileID", fileID, logger.Err(err))
			reply(i18n.T(uiLang, "couldnt_download_file"))
			return
		}

		transcript, err := transcriber.Transcribe(ctx, audio, mimeType, settings.SpeechSettings(ctx, chatID))
		if err != nil {
			slog.ErrorContext(ctx, "transcribing audio", "chatID", chatID, logger.Err(err))

			var trErr *domain.TranscriptionError
			if errors.As(err, &trErr) && trErr.Kind == domain.TranscriptionLanguageModelIncompatible {
				reply(i18n.T(uiLang, "transcribe_failed_vi_model"))
			} else {
				reply(i18n.T(uiLang, "transcribe_failed"))
			}
			return
		}

		if transcript == "" {
			reply(i18n.T(uiLang, "transcription_empty"))
			return
		}

		b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Action:          models.ChatActionUploadDocument,
		})

		b.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Document: &models.InputFileUpload{
				Filename: transcriptFilename(fileName),
				Data:     strings.NewReader(transcript),
			},
			Caption: i18n.T(uiLang, "transcription_caption"),
		})
	}
}

func audioSource(msg *models.Message) (fileID, mimeType, fileName string) {
	switch {
	case msg.Voice != nil:
		return msg.Voice.FileID, msg.Voice.MimeType, ""
	case msg.Audio != nil:
		return msg.Audio.FileID, msg.Audio.MimeType, msg.Audio.FileName
	case msg.VideoNote != nil:
		return msg.VideoNote.FileID, "", ""
	case msg.Document != nil:
		return msg.Document.FileID, msg.Document.MimeType, msg.Document.FileName
	}
	return "", "", ""
}

func transcriptFilename(name string) string {
	if name == "" {
		return "transcription.txt"
	}
	return strings.TrimSuffix(name, path.Ext(name)) + ".txt"
}
