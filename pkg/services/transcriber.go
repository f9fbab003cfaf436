package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/tdvo/deepgram-telegram-bot/pkg/deepgram"
	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

type DeepgramTranscriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string, opts deepgram.TranscribeOptions) (*deepgram.TranscriptionResponse, error)
}

type transcriberService struct {
	client DeepgramTranscriber
}

func NewTranscriberService(client DeepgramTranscriber) *transcriberService {
	return &transcriberService{client: client}
}

// Transcribe runs at most two provider attempts: the primary with the chat's
// options, then exactly one retry with bare language detection. Malformed
// language/model combinations are the dominant failure mode and blind
// auto-detect recovers most of them.
//
// An empty returned transcript with a nil error is a valid outcome the caller
// must report distinctly, not a failure.
func (t *transcriberService) Transcribe(ctx context.Context, audio []byte, mimeType string, speech domain.SpeechSettings) (string, error) {
	opts := buildTranscribeOptions(speech)

	resp, primaryErr := t.client.Transcribe(ctx, audio, mimeType, opts)
	if primaryErr != nil {
		slog.WarnContext(ctx, "primary transcription failed, retrying with language detection", logger.Err(primaryErr))

		var fallbackErr error
		resp, fallbackErr = t.client.Transcribe(ctx, audio, mimeType, deepgram.TranscribeOptions{DetectLanguage: true})
		if fallbackErr != nil {
			return "", &domain.TranscriptionError{
				Kind:     classifyTranscriptionFailure(primaryErr),
				Primary:  primaryErr,
				Fallback: fallbackErr,
			}
		}
	}

	return extractTranscript(resp), nil
}

// buildTranscribeOptions derives provider options from the chat's speech
// settings. Pure: same settings always yield the same options.
func buildTranscribeOptions(speech domain.SpeechSettings) deepgram.TranscribeOptions {
	if speech.DetectLanguage {
		return deepgram.TranscribeOptions{DetectLanguage: true}
	}

	opts := deepgram.TranscribeOptions{Language: speech.Language}
	if speech.Model != "" {
		opts.Model = speech.Model
	} else if isVietnamese(speech.Language) {
		// The general-purpose model underperforms for Vietnamese; never
		// override a model the user chose explicitly.
		opts.Model = domain.VietnameseDefaultModel
	}
	return opts
}

func isVietnamese(code string) bool {
	c := strings.ToLower(code)
	return c == "vi" || c == "vi-vn"
}

// classifyTranscriptionFailure inspects the primary failure: a 400-class
// rejection whose detail references a Vietnamese language code means the
// language/model combination itself was refused.
func classifyTranscriptionFailure(primary error) domain.TranscriptionErrorKind {
	msg := primary.Error()

	badRequest := strings.Contains(msg, "400")
	var apiErr *deepgram.APIError
	if errors.As(primary, &apiErr) {
		badRequest = apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}

	if badRequest && (strings.Contains(msg, "language=vi-VN") || strings.Contains(msg, "language=vi")) {
		return domain.TranscriptionLanguageModelIncompatible
	}
	return domain.TranscriptionGenericFailure
}

// extractTranscript pulls plain text out of a provider response: the first
// channel's first alternative when non-empty, otherwise utterances joined by
// newlines, otherwise empty.
func extractTranscript(resp *deepgram.TranscriptionResponse) string {
	if resp == nil {
		return ""
	}

	if channels := resp.Results.Channels; len(channels) > 0 && len(channels[0].Alternatives) > 0 {
		if text := strings.TrimSpace(channels[0].Alternatives[0].Transcript); text != "" {
			return text
		}
	}

	parts := lo.FilterMap(resp.Results.Utterances, func(u deepgram.Utterance, _ int) (string, bool) {
		text := strings.TrimSpace(u.Transcript)
		return text, text != ""
	})
	return strings.Join(parts, "\n")
}
