package services

import (
	"context"
	"testing"

	"github.com/tdvo/deepgram-telegram-bot/pkg/deepgram"
	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

type fakeAnalyzer struct {
	lastText string
	lastOpts deepgram.AnalyzeOptions
	result   []byte
	err      error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string, opts deepgram.AnalyzeOptions) ([]byte, error) {
	f.lastText = text
	f.lastOpts = opts
	return f.result, f.err
}

func TestAnalyzeDisabled(t *testing.T) {
	svc := NewAnalyzerService(&fakeAnalyzer{}, false)

	if svc.Available() {
		t.Errorf("expected Available() == false")
	}
	if _, err := svc.Analyze(context.Background(), "text", domain.DefaultAnalysisSettings()); err == nil {
		t.Errorf("expected error when disabled")
	}
}

func TestAnalyzePassesSettings(t *testing.T) {
	fake := &fakeAnalyzer{result: []byte(`{"ok":true}`)}
	svc := NewAnalyzerService(fake, true)

	result, err := svc.Analyze(context.Background(), "some text", domain.AnalysisSettings{
		Language:  "en",
		Summarize: domain.SummarizeV2,
		Topics:    true,
		Sentiment: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != `{"ok":true}` {
		t.Errorf("result = %s", result)
	}
	if fake.lastText != "some text" {
		t.Errorf("text = %q", fake.lastText)
	}

	want := deepgram.AnalyzeOptions{Language: "en", Summarize: "v2", Topics: true, Sentiment: true}
	if fake.lastOpts != want {
		t.Errorf("options = %+v, want %+v", fake.lastOpts, want)
	}
}

func TestBuildAnalyzeOptionsSummarizeOff(t *testing.T) {
	opts := buildAnalyzeOptions(domain.AnalysisSettings{Language: "en", Summarize: domain.SummarizeOff, Topics: true})
	if opts.Summarize != "" {
		t.Errorf("summarize off must be omitted, got %q", opts.Summarize)
	}
}
