package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/samber/lo"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
)

type SettingsStore interface {
	Enabled() bool
	GetSpeech(ctx context.Context, chatID int64) (domain.SpeechSettings, error)
	SaveSpeech(ctx context.Context, chatID int64, speech domain.SpeechSettings) error
	GetAnalysis(ctx context.Context, chatID int64) (domain.AnalysisSettings, error)
	SaveAnalysis(ctx context.Context, chatID int64, analysis domain.AnalysisSettings) error
	GetUILanguage(ctx context.Context, chatID int64) (string, error)
	SaveUILanguage(ctx context.Context, chatID int64, lang string) error
	Count(ctx context.Context) (int, error)
}

// settingsService owns the in-process settings cache. Entries are loaded from
// the store on first touch and mutated in place; every mutation is written
// through best-effort, so a failing store never fails a user command.
//
// The cache is authoritative for the process lifetime and never evicted;
// growth is bounded by the number of distinct chats seen, which is fine for a
// bot of this size.
//
// Two locking layers: s.mu guards the shared maps against concurrent access
// from different chats, the per-chat mutex from chatLock keeps one chat's
// load-mutate-save cycle atomic.
type settingsService struct {
	store SettingsStore

	mu       sync.Mutex
	locks    map[int64]*sync.Mutex
	speech   map[int64]domain.SpeechSettings
	analysis map[int64]domain.AnalysisSettings
	uiLang   map[int64]string
}

func NewSettingsService(store SettingsStore) *settingsService {
	return &settingsService{
		store:    store,
		locks:    make(map[int64]*sync.Mutex),
		speech:   make(map[int64]domain.SpeechSettings),
		analysis: make(map[int64]domain.AnalysisSettings),
		uiLang:   make(map[int64]string),
	}
}

// chatLock returns the mutex serializing all settings access for one chat.
// Two commands racing on the same chat must not interleave their
// read-modify-write cycles; distinct chats share nothing.
func (s *settingsService) chatLock(chatID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[chatID] = l
	}
	return l
}

func (s *settingsService) cachedSpeech(chatID int64) (domain.SpeechSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	speech, ok := s.speech[chatID]
	return speech, ok
}

func (s *settingsService) cacheSpeech(chatID int64, speech domain.SpeechSettings) {
	s.mu.Lock()
	s.speech[chatID] = speech
	s.mu.Unlock()
}

func (s *settingsService) cachedAnalysis(chatID int64) (domain.AnalysisSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis, ok := s.analysis[chatID]
	return analysis, ok
}

func (s *settingsService) cacheAnalysis(chatID int64, analysis domain.AnalysisSettings) {
	s.mu.Lock()
	s.analysis[chatID] = analysis
	s.mu.Unlock()
}

func (s *settingsService) cachedUILanguage(chatID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang, ok := s.uiLang[chatID]
	return lang, ok
}

func (s *settingsService) cacheUILanguage(chatID int64, lang string) {
	s.mu.Lock()
	s.uiLang[chatID] = lang
	s.mu.Unlock()
}

func (s *settingsService) StoreEnabled() bool { return s.store.Enabled() }

func (s *settingsService) StoreCount(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// --- speech group ---

func (s *settingsService) SpeechSettings(ctx context.Context, chatID int64) domain.SpeechSettings {
	l := s.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	return s.loadSpeechLocked(ctx, chatID)
}

func (s *settingsService) loadSpeechLocked(ctx context.Context, chatID int64) domain.SpeechSettings {
	if speech, ok := s.cachedSpeech(chatID); ok {
		return speech
	}

	speech, err := s.store.GetSpeech(ctx, chatID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "loading speech settings, using defaults", "chatID", chatID, logger.Err(err))
		}
		speech = domain.DefaultSpeechSettings()
	}

	s.cacheSpeech(chatID, speech)
	return speech
}

func (s *settingsService) mutateSpeech(ctx context.Context, chatID int64, fn func(*domain.SpeechSettings)) domain.SpeechSettings {
	l := s.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	speech := s.loadSpeechLocked(ctx, chatID)
	fn(&speech)
	s.cacheSpeech(chatID, speech)

	if err := s.store.SaveSpeech(ctx, chatID, speech); err != nil {
		slog.WarnContext(ctx, "persisting speech settings", "chatID", chatID, logger.Err(err))
	}
	return speech
}

// SetSpeechLanguage sets a concrete recognition language; picking one turns
// auto-detect off in the same write.
func (s *settingsService) SetSpeechLanguage(ctx context.Context, chatID int64, code string) error {
	value, err := cleanText("language", code)
	if err != nil {
		return err
	}
	s.mutateSpeech(ctx, chatID, func(speech *domain.SpeechSettings) {
		speech.Language = value
		speech.DetectLanguage = false
	})
	return nil
}

func (s *settingsService) SetDetectLanguage(ctx context.Context, chatID int64, on bool) {
	s.mutateSpeech(ctx, chatID, func(speech *domain.SpeechSettings) {
		speech.DetectLanguage = on
	})
}

// UpdateSpeechField applies one validated field mutation to the speech group.
func (s *settingsService) UpdateSpeechField(ctx context.Context, chatID int64, field, rawValue string) error {
	switch field {
	case "language", "model":
		value, err := cleanText(field, rawValue)
		if err != nil {
			return err
		}
		s.mutateSpeech(ctx, chatID, func(speech *domain.SpeechSettings) {
			if field == "language" {
				speech.Language = value
			} else {
				speech.Model = value
			}
		})
		return nil
	case "detect_language":
		b, ok := parseBool(rawValue)
		if !ok {
			return &domain.ValidationError{Kind: domain.ValidationBadBoolean, Field: field, Hint: "expected on/off|true/false|yes/no|1/0"}
		}
		s.SetDetectLanguage(ctx, chatID, b)
		return nil
	}
	return &domain.ValidationError{Kind: domain.ValidationUnknownField, Field: field}
}

// --- analysis group ---

func (s *settingsService) AnalysisSettings(ctx context.Context, chatID int64) domain.AnalysisSettings {
	l := s.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	return s.loadAnalysisLocked(ctx, chatID)
}

func (s *settingsService) loadAnalysisLocked(ctx context.Context, chatID int64) domain.AnalysisSettings {
	if analysis, ok := s.cachedAnalysis(chatID); ok {
		return analysis
	}

	analysis, err := s.store.GetAnalysis(ctx, chatID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "loading analysis settings, using defaults", "chatID", chatID, logger.Err(err))
		}
		analysis = domain.DefaultAnalysisSettings()
	}

	s.cacheAnalysis(chatID, analysis)
	return analysis
}

func (s *settingsService) mutateAnalysis(ctx context.Context, chatID int64, fn func(*domain.AnalysisSettings)) domain.AnalysisSettings {
	l := s.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	analysis := s.loadAnalysisLocked(ctx, chatID)
	fn(&analysis)
	s.cacheAnalysis(chatID, analysis)

	if err := s.store.SaveAnalysis(ctx, chatID, analysis); err != nil {
		slog.WarnContext(ctx, "persisting analysis settings", "chatID", chatID, logger.Err(err))
	}
	return analysis
}

// UpdateAnalysisField applies one validated field mutation to the analysis group.
func (s *settingsService) UpdateAnalysisField(ctx context.Context, chatID int64, field, rawValue string) error {
	switch field {
	case "language":
		value, err := cleanText(field, rawValue)
		if err != nil {
			return err
		}
		s.mutateAnalysis(ctx, chatID, func(analysis *domain.AnalysisSettings) {
			analysis.Language = value
		})
		return nil
	case "summarize":
		value := strings.ToLower(strings.TrimSpace(rawValue))
		if value != domain.SummarizeOff && value != domain.SummarizeV2 {
			return &domain.ValidationError{Kind: domain.ValidationBadEnum, Field: field, Hint: "expected off|v2"}
		}
		s.mutateAnalysis(ctx, chatID, func(analysis *domain.AnalysisSettings) {
			analysis.Summarize = value
		})
		return nil
	case "topics", "intents", "sentiment":
		b, ok := parseBool(rawValue)
		if !ok {
			return &domain.ValidationError{Kind: domain.ValidationBadBoolean, Field: field, Hint: "expected on/off|true/false|yes/no|1/0"}
		}
		s.mutateAnalysis(ctx, chatID, func(analysis *domain.AnalysisSettings) {
			switch field {
			case "topics":
				analysis.Topics = b
			case "intents":
				analysis.Intents = b
			case "sentiment":
				analysis.Sentiment = b
			}
		})
		return nil
	}
	return &domain.ValidationError{Kind: domain.ValidationUnknownField, Field: field}
}

// UpdateField routes a dotted "group.field" path, e.g. "stt.language" or
// "ti.topics", through the same validation and write path the chat commands
// use. This is the admin entry point.
func (s *settingsService) UpdateField(ctx context.Context, chatID int64, path, rawValue string) error {
	group, field, found := strings.Cut(path, ".")
	if !found {
		return &domain.ValidationError{Kind: domain.ValidationUnknownField, Field: path, Hint: "expected <stt|ti>.<field>"}
	}

	switch group {
	case domain.SpeechGroup:
		return s.UpdateSpeechField(ctx, chatID, field, rawValue)
	case domain.AnalysisGroup:
		return s.UpdateAnalysisField(ctx, chatID, field, rawValue)
	}
	return &domain.ValidationError{Kind: domain.ValidationUnknownField, Field: path, Hint: "expected <stt|ti>.<field>"}
}

// --- UI language ---

func (s *settingsService) UILanguage(ctx context.Context, chatID int64) string {
	l := s.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	if lang, ok := s.cachedUILanguage(chatID); ok {
		return lang
	}

	lang, err := s.store.GetUILanguage(ctx, chatID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "loading ui language, using default", "chatID", chatID, logger.Err(err))
		}
		lang = domain.UILanguageEN
	}
	lang = lo.Ternary(strings.HasPrefix(strings.ToLower(lang), "vi"), domain.UILanguageVI, domain.UILanguageEN)

	s.cacheUILanguage(chatID, lang)
	return lang
}

func (s *settingsService) SetUILanguage(ctx context.Context, chatID int64, lang string) {
	lang = lo.Ternary(strings.HasPrefix(strings.ToLower(lang), "vi"), domain.UILanguageVI, domain.UILanguageEN)

	l := s.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	s.cacheUILanguage(chatID, lang)

	if err := s.store.SaveUILanguage(ctx, chatID, lang); err != nil {
		slog.WarnContext(ctx, "persisting ui language", "chatID", chatID, logger.Err(err))
	}
}

// --- input coercion ---

func parseBool(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "yes", "1":
		return true, true
	case "off", "false", "no", "0":
		return false, true
	}
	return false, false
}

// cleanText trims a free-text field value. Empty is permitted and means
// "unset/default"; control characters are rejected.
func cleanText(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if strings.ContainsFunc(value, unicode.IsControl) {
		return "", &domain.ValidationError{Kind: domain.ValidationBadValue, Field: field, Hint: "control characters are not allowed"}
	}
	return value, nil
}
