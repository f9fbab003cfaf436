package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

// fakeSettingsStore is safe for concurrent use, like the real *sql.DB-backed
// store.
type fakeSettingsStore struct {
	mu       sync.Mutex
	speech   map[int64]domain.SpeechSettings
	analysis map[int64]domain.AnalysisSettings
	uiLang   map[int64]string

	saveErr error
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{
		speech:   make(map[int64]domain.SpeechSettings),
		analysis: make(map[int64]domain.AnalysisSettings),
		uiLang:   make(map[int64]string),
	}
}

func (f *fakeSettingsStore) Enabled() bool { return true }

func (f *fakeSettingsStore) GetSpeech(_ context.Context, chatID int64) (domain.SpeechSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.speech[chatID]
	if !ok {
		return domain.SpeechSettings{}, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSettingsStore) SaveSpeech(_ context.Context, chatID int64, speech domain.SpeechSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.speech[chatID] = speech
	return nil
}

func (f *fakeSettingsStore) GetAnalysis(_ context.Context, chatID int64) (domain.AnalysisSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.analysis[chatID]
	if !ok {
		return domain.AnalysisSettings{}, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeSettingsStore) SaveAnalysis(_ context.Context, chatID int64, analysis domain.AnalysisSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.analysis[chatID] = analysis
	return nil
}

func (f *fakeSettingsStore) GetUILanguage(_ context.Context, chatID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lang, ok := f.uiLang[chatID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return lang, nil
}

func (f *fakeSettingsStore) SaveUILanguage(_ context.Context, chatID int64, lang string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.uiLang[chatID] = lang
	return nil
}

func (f *fakeSettingsStore) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.speech), nil
}

func TestSpeechSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())

	speech := svc.SpeechSettings(context.Background(), 1)

	if speech.Language != "en-US" || speech.DetectLanguage || speech.Model != "" {
		t.Errorf("expected defaults {en-US false \"\"}, got %+v", speech)
	}

	analysis := svc.AnalysisSettings(context.Background(), 1)
	if analysis.Language != "en" || analysis.Summarize != "v2" || !analysis.Topics || !analysis.Intents || !analysis.Sentiment {
		t.Errorf("expected defaults {en v2 true true true}, got %+v", analysis)
	}
}

func TestSetSpeechLanguageDisablesDetect(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())
	ctx := context.Background()

	svc.SetDetectLanguage(ctx, 1, true)
	if err := svc.SetSpeechLanguage(ctx, 1, "vi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	speech := svc.SpeechSettings(ctx, 1)
	if speech.Language != "vi" || speech.DetectLanguage {
		t.Errorf("expected {vi false}, got %+v", speech)
	}
}

func TestUpdateFieldCrossGroupPreservation(t *testing.T) {
	store := newFakeSettingsStore()
	svc := NewSettingsService(store)
	ctx := context.Background()

	if err := svc.UpdateField(ctx, 7, "stt.language", "vi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.UpdateField(ctx, 7, "ti.topics", "off"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	speech := svc.SpeechSettings(ctx, 7)
	if speech.Language != "vi" {
		t.Errorf("analysis update clobbered speech language, got %q", speech.Language)
	}
	analysis := svc.AnalysisSettings(ctx, 7)
	if analysis.Topics {
		t.Errorf("expected topics off")
	}

	// A fresh service over the same store must see both writes.
	svc2 := NewSettingsService(store)
	if got := svc2.SpeechSettings(ctx, 7).Language; got != "vi" {
		t.Errorf("persisted speech language = %q, want vi", got)
	}
	if svc2.AnalysisSettings(ctx, 7).Topics {
		t.Errorf("persisted topics should be off")
	}
}

func TestUpdateFieldValidation(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())
	ctx := context.Background()

	tests := []struct {
		path  string
		value string
		kind  domain.ValidationKind
	}{
		{"stt.nosuch", "x", domain.ValidationUnknownField},
		{"stt.detect_language", "maybe", domain.ValidationBadBoolean},
		{"ti.summarize", "v3", domain.ValidationBadEnum},
		{"ti.topics", "nope", domain.ValidationBadBoolean},
		{"misc.language", "en", domain.ValidationUnknownField},
		{"noDot", "x", domain.ValidationUnknownField},
	}

	for _, test := range tests {
		err := svc.UpdateField(ctx, 1, test.path, test.value)

		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("UpdateField(%q, %q): expected validation error, got %v", test.path, test.value, err)
			continue
		}
		if vErr.Kind != test.kind {
			t.Errorf("UpdateField(%q, %q): kind = %s, want %s", test.path, test.value, vErr.Kind, test.kind)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw   string
		value bool
		ok    bool
	}{
		{"on", true, true},
		{"On", true, true},
		{"TRUE", true, true},
		{"yes", true, true},
		{"1", true, true},
		{"off", false, true},
		{"False", false, true},
		{"NO", false, true},
		{"0", false, true},
		{" on ", true, true},
		{"nope", false, false},
		{"", false, false},
		{"2", false, false},
	}

	for _, test := range tests {
		value, ok := parseBool(test.raw)
		if value != test.value || ok != test.ok {
			t.Errorf("parseBool(%q) = (%t, %t), want (%t, %t)", test.raw, value, ok, test.value, test.ok)
		}
	}
}

func TestMutationsSurviveStoreFailure(t *testing.T) {
	store := newFakeSettingsStore()
	store.saveErr = errors.New("connection refused")
	svc := NewSettingsService(store)
	ctx := context.Background()

	if err := svc.UpdateField(ctx, 1, "stt.model", "nova-3"); err != nil {
		t.Fatalf("store failure must not fail the command: %v", err)
	}
	if got := svc.SpeechSettings(ctx, 1).Model; got != "nova-3" {
		t.Errorf("cached model = %q, want nova-3", got)
	}
}

func TestUILanguageNormalization(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())
	ctx := context.Background()

	if got := svc.UILanguage(ctx, 1); got != domain.UILanguageEN {
		t.Errorf("default ui language = %q, want en", got)
	}

	svc.SetUILanguage(ctx, 1, "vi-VN")
	if got := svc.UILanguage(ctx, 1); got != domain.UILanguageVI {
		t.Errorf("ui language = %q, want vi", got)
	}

	svc.SetUILanguage(ctx, 1, "de")
	if got := svc.UILanguage(ctx, 1); got != domain.UILanguageEN {
		t.Errorf("unsupported ui language should fall back to en, got %q", got)
	}
}

func TestCleanTextRejectsControlCharacters(t *testing.T) {
	if _, err := cleanText("language", "vi\x00VN"); err == nil {
		t.Errorf("expected control character rejection")
	}
	if value, err := cleanText("model", "  nova-2  "); err != nil || value != "nova-2" {
		t.Errorf("cleanText = (%q, %v), want (nova-2, nil)", value, err)
	}
	if value, err := cleanText("model", ""); err != nil || value != "" {
		t.Errorf("empty value must be permitted, got (%q, %v)", value, err)
	}
}

func TestConcurrentAccessDistinctChats(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())
	ctx := context.Background()

	const chats = 64

	var wg sync.WaitGroup
	wg.Add(chats)
	for i := 0; i < chats; i++ {
		go func(chatID int64) {
			defer wg.Done()

			svc.SpeechSettings(ctx, chatID)
			if err := svc.UpdateField(ctx, chatID, "stt.language", "vi"); err != nil {
				t.Errorf("chat %d: %v", chatID, err)
			}
			svc.UILanguage(ctx, chatID)
			if err := svc.UpdateField(ctx, chatID, "ti.topics", "off"); err != nil {
				t.Errorf("chat %d: %v", chatID, err)
			}
			svc.AnalysisSettings(ctx, chatID)
			svc.SetUILanguage(ctx, chatID, "vi")
		}(int64(i))
	}
	wg.Wait()

	for i := int64(0); i < chats; i++ {
		if got := svc.SpeechSettings(ctx, i).Language; got != "vi" {
			t.Errorf("chat %d: language = %q, want vi", i, got)
		}
		if svc.AnalysisSettings(ctx, i).Topics {
			t.Errorf("chat %d: expected topics off", i)
		}
		if got := svc.UILanguage(ctx, i); got != domain.UILanguageVI {
			t.Errorf("chat %d: ui language = %q, want vi", i, got)
		}
	}
}

func TestConcurrentSameChatMutations(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())
	ctx := context.Background()

	const writers = 32

	var wg sync.WaitGroup
	wg.Add(2 * writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			if err := svc.UpdateField(ctx, 1, "stt.model", "nova-2"); err != nil {
				t.Errorf("speech write: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := svc.UpdateField(ctx, 1, "ti.sentiment", "off"); err != nil {
				t.Errorf("analysis write: %v", err)
			}
		}()
	}
	wg.Wait()

	// Writers to the two groups must not lose each other's fields.
	if got := svc.SpeechSettings(ctx, 1).Model; got != "nova-2" {
		t.Errorf("model = %q, want nova-2", got)
	}
	if svc.AnalysisSettings(ctx, 1).Sentiment {
		t.Errorf("expected sentiment off")
	}
}
