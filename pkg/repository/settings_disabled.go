package repository

import (
	"context"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

// disabledSettingsRepository is the adapter used when no database is
// configured. Reads report no record, writes succeed without doing anything;
// running without persistence is a supported deployment, not an error.
type disabledSettingsRepository struct{}

func NewDisabledSettingsRepository() *disabledSettingsRepository {
	return &disabledSettingsRepository{}
}

func (disabledSettingsRepository) Enabled() bool { return false }

func (disabledSettingsRepository) GetSpeech(context.Context, int64) (domain.SpeechSettings, error) {
	return domain.SpeechSettings{}, domain.ErrNotFound
}

func (disabledSettingsRepository) SaveSpeech(context.Context, int64, domain.SpeechSettings) error {
	return nil
}

func (disabledSettingsRepository) GetAnalysis(context.Context, int64) (domain.AnalysisSettings, error) {
	return domain.AnalysisSettings{}, domain.ErrNotFound
}

func (disabledSettingsRepository) SaveAnalysis(context.Context, int64, domain.AnalysisSettings) error {
	return nil
}

func (disabledSettingsRepository) GetUILanguage(context.Context, int64) (string, error) {
	return "", domain.ErrNotFound
}

func (disabledSettingsRepository) SaveUILanguage(context.Context, int64, string) error {
	return nil
}

func (disabledSettingsRepository) Count(context.Context) (int, error) {
	return 0, nil
}
