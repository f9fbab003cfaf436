package services

import (
	"context"
	"fmt"

	"github.com/tdvo/deepgram-telegram-bot/pkg/deepgram"
	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type DeepgramAnalyzer interface {
	Analyze(ctx context.Context, text string, opts deepgram.AnalyzeOptions) ([]byte, error)
}

type analyzerService struct {
	client  DeepgramAnalyzer
	enabled bool
}

func NewAnalyzerService(client DeepgramAnalyzer, enabled bool) *analyzerService {
	return &analyzerService{client: client, enabled: enabled}
}

// Available reports whether text intelligence is usable in this deployment.
func (a *analyzerService) Available() bool { return a.enabled }

// Analyze runs the read API with the chat's analysis settings and returns the
// result as a pretty-printed JSON document. No retry: analysis failures are
// reported once.
func (a *analyzerService) Analyze(ctx context.Context, text string, analysis domain.AnalysisSettings) ([]byte, error) {
	if !a.enabled {
		return nil, fmt.Errorf("text intelligence is disabled")
	}

	result, err := a.client.Analyze(ctx, text, buildAnalyzeOptions(analysis))
	if err != nil {
		return nil, fmt.Errorf("analyzing text: %w", err)
	}
	return result, nil
}

// buildAnalyzeOptions maps the analysis group to request options. Summarize
// "off" and disabled toggles are simply omitted from the request.
func buildAnalyzeOptions(analysis domain.AnalysisSettings) deepgram.AnalyzeOptions {
	opts := deepgram.AnalyzeOptions{
		Language:  analysis.Language,
		Topics:    analysis.Topics,
		Intents:   analysis.Intents,
		Sentiment: analysis.Sentiment,
	}
	if analysis.Summarize == domain.SummarizeV2 {
		opts.Summarize = domain.SummarizeV2
	}
	return opts
}
