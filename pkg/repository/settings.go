package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

// settingsRepository stores all per-chat settings in one user_settings row.
// The speech and analysis groups are written independently: an insert supplies
// the other group's defaults, a conflict update touches only the written
// group's columns. That keeps concurrent writers to different groups from
// clobbering each other.
type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{db: db}
}

func (s *settingsRepository) Enabled() bool { return true }

func (s *settingsRepository) GetSpeech(ctx context.Context, chatID int64) (domain.SpeechSettings, error) {
	const query = `
		SELECT language, detect_language, model
		FROM user_settings
		WHERE chat_id = $1
	`

	var speech domain.SpeechSettings
	err := s.db.QueryRowContext(ctx, query, chatID).
		Scan(&speech.Language, &speech.DetectLanguage, &speech.Model)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SpeechSettings{}, domain.ErrNotFound
		}
		return domain.SpeechSettings{}, fmt.Errorf("fetching speech settings: %w", err)
	}

	return speech, nil
}

func (s *settingsRepository) SaveSpeech(ctx context.Context, chatID int64, speech domain.SpeechSettings) error {
	const query = `
		INSERT INTO user_settings (chat_id, language, detect_language, model, ti_language, summarize, topics, intents, sentiment)
		VALUES ($1, $2, $3, $4, 'en', 'v2', TRUE, TRUE, TRUE)
		ON CONFLICT (chat_id)
		DO UPDATE SET
			language = EXCLUDED.language,
			detect_language = EXCLUDED.detect_language,
			model = EXCLUDED.model,
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, chatID, speech.Language, speech.DetectLanguage, speech.Model); err != nil {
		return fmt.Errorf("saving speech settings: %w", err)
	}

	return nil
}

func (s *settingsRepository) GetAnalysis(ctx context.Context, chatID int64) (domain.AnalysisSettings, error) {
	const query = `
		SELECT ti_language, summarize, topics, intents, sentiment
		FROM user_settings
		WHERE chat_id = $1
	`

	var analysis domain.AnalysisSettings
	err := s.db.QueryRowContext(ctx, query, chatID).
		Scan(&analysis.Language, &analysis.Summarize, &analysis.Topics, &analysis.Intents, &analysis.Sentiment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AnalysisSettings{}, domain.ErrNotFound
		}
		return domain.AnalysisSettings{}, fmt.Errorf("fetching analysis settings: %w", err)
	}

	return analysis, nil
}

func (s *settingsRepository) SaveAnalysis(ctx context.Context, chatID int64, analysis domain.AnalysisSettings) error {
	const query = `
		INSERT INTO user_settings (chat_id, ti_language, summarize, topics, intents, sentiment, language, detect_language, model)
		VALUES ($1, $2, $3, $4, $5, $6, 'en-US', FALSE, '')
		ON CONFLICT (chat_id)
		DO UPDATE SET
			ti_language = EXCLUDED.ti_language,
			summarize = EXCLUDED.summarize,
			topics = EXCLUDED.topics,
			intents = EXCLUDED.intents,
			sentiment = EXCLUDED.sentiment,
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, chatID,
		analysis.Language, analysis.Summarize, analysis.Topics, analysis.Intents, analysis.Sentiment); err != nil {
		return fmt.Errorf("saving analysis settings: %w", err)
	}

	return nil
}

func (s *settingsRepository) GetUILanguage(ctx context.Context, chatID int64) (string, error) {
	const query = `
		SELECT ui_language
		FROM user_settings
		WHERE chat_id = $1
	`

	var lang string
	if err := s.db.QueryRowContext(ctx, query, chatID).Scan(&lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("fetching ui language: %w", err)
	}

	return lang, nil
}

func (s *settingsRepository) SaveUILanguage(ctx context.Context, chatID int64, lang string) error {
	const query = `
		INSERT INTO user_settings (chat_id, ui_language, language, detect_language, model, ti_language, summarize, topics, intents, sentiment)
		VALUES ($1, $2, 'en-US', FALSE, '', 'en', 'v2', TRUE, TRUE, TRUE)
		ON CONFLICT (chat_id)
		DO UPDATE SET
			ui_language = EXCLUDED.ui_language,
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, chatID, lang); err != nil {
		return fmt.Errorf("saving ui language: %w", err)
	}

	return nil
}

func (s *settingsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_settings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting settings rows: %w", err)
	}
	return count, nil
}
