package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/go-telegram/bot"

	"github.com/tdvo/deepgram-telegram-bot/pkg/database"
	"github.com/tdvo/deepgram-telegram-bot/pkg/deepgram"
	"github.com/tdvo/deepgram-telegram-bot/pkg/logger"
	"github.com/tdvo/deepgram-telegram-bot/pkg/repository"
	"github.com/tdvo/deepgram-telegram-bot/pkg/services"
	"github.com/tdvo/deepgram-telegram-bot/pkg/telegram/handlers"
	"github.com/tdvo/deepgram-telegram-bot/pkg/telegram/middleware"
	"github.com/tdvo/deepgram-telegram-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken        string `env:"TELEGRAM_BOT_TOKEN,required"`
	DeepgramAPIKey          string `env:"DEEPGRAM_API_KEY,required"`
	PgURL                   string `env:"DATABASE_URL"`
	AdminUserID             int64  `env:"ADMIN_USER_ID"`
	TextIntelligenceEnabled bool   `env:"TEXT_INTELLIGENCE_ENABLED" envDefault:"true"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	deepgramClient, err := deepgram.NewClient(cfg.DeepgramAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating deepgram client: %w", err)
	}

	settingsRepository := newSettingsRepository(cfg.PgURL)

	settingsService := services.NewSettingsService(settingsRepository)
	transcriberService := services.NewTranscriberService(deepgramClient)
	analyzerService := services.NewAnalyzerService(deepgramClient, cfg.TextIntelligenceEnabled)

	b, err := bot.New(cfg.TelegramBotToken,
		bot.WithMiddlewares(middleware.RequestID, middleware.Typing),
	)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, handlers.Start(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, handlers.Help(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/language", bot.MatchTypePrefix, handlers.SetUILanguage(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/speechlang", bot.MatchTypePrefix, handlers.SetSpeechLanguage(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/lang", bot.MatchTypeCommand, handlers.SetLanguage(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/detect", bot.MatchTypePrefix, handlers.SetDetect(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/model", bot.MatchTypePrefix, handlers.SetModel(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, handlers.SpeechStatus(settingsService))

	b.RegisterHandler(bot.HandlerTypeMessageText, "/anstatus", bot.MatchTypePrefix, handlers.AnalysisStatus(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/anlang", bot.MatchTypePrefix, handlers.SetAnalysisLanguage(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/summarize", bot.MatchTypePrefix, handlers.SetSummarize(settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/topics", bot.MatchTypePrefix, handlers.SetAnalysisToggle(settingsService, "topics"))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/intents", bot.MatchTypePrefix, handlers.SetAnalysisToggle(settingsService, "intents"))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/sentiment", bot.MatchTypePrefix, handlers.SetAnalysisToggle(settingsService, "sentiment"))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/analyze", bot.MatchTypePrefix, handlers.AnalyzeText(settingsService, analyzerService))

	b.RegisterHandler(bot.HandlerTypeMessageText, "/adminstatus", bot.MatchTypePrefix, handlers.AdminStatus(cfg.AdminUserID, settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/adminget", bot.MatchTypePrefix, handlers.AdminGet(cfg.AdminUserID, settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/adminset", bot.MatchTypePrefix, handlers.AdminSet(cfg.AdminUserID, settingsService))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeCommand, handlers.Admin(cfg.AdminUserID))

	b.RegisterHandlerMatchFunc(handlers.IsAudioMessage, handlers.TranscribeAudio(settingsService, transcriberService))
	b.RegisterHandlerMatchFunc(handlers.IsTextDocument, handlers.AnalyzeDocument(settingsService, analyzerService))

	var workerGroup workers.Group

	worker, err := workers.NewTelegramBot(b)
	if err != nil {
		return nil, err
	}
	workerGroup = append(workerGroup, worker)

	return workerGroup, nil
}

// newSettingsRepository falls back to in-memory settings when no database is
// configured or it is unreachable. The bot stays useful either way.
func newSettingsRepository(pgURL string) services.SettingsStore {
	if pgURL == "" {
		slog.Info("DATABASE_URL not set, settings will not persist across restarts")
		return repository.NewDisabledSettingsRepository()
	}

	db, err := database.NewPostgres(pgURL)
	if err != nil {
		slog.Warn("connecting to postgres failed, settings will not persist across restarts", logger.Err(err))
		return repository.NewDisabledSettingsRepository()
	}

	return repository.NewSettingsRepository(db)
}
