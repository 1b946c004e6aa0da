package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmaulidan/shortforge/internal/auth"
	"github.com/tmaulidan/shortforge/internal/config"
	"github.com/tmaulidan/shortforge/internal/highlight"
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/media"
	"github.com/tmaulidan/shortforge/internal/moderation"
	"github.com/tmaulidan/shortforge/internal/monitor"
	"github.com/tmaulidan/shortforge/internal/notify"
	"github.com/tmaulidan/shortforge/internal/overlay"
	"github.com/tmaulidan/shortforge/internal/pipeline"
	"github.com/tmaulidan/shortforge/internal/soundboard"
	"github.com/tmaulidan/shortforge/internal/storage"
	"github.com/tmaulidan/shortforge/internal/subtitle"
	"github.com/tmaulidan/shortforge/internal/transcribe"
	"github.com/tmaulidan/shortforge/pkg/executor"
)

// app carries the shared dependency graph the subcommands wire up from
// the config file.
type app struct {
	cfg       *config.Config
	logger    logger.Logger
	processor pipeline.Processor
}

func newApp(configPath string) (*app, error) {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	exec := executor.New()

	keywords, err := moderation.LoadKeywords(cfg.Moderation.KeywordsFile)
	if err != nil {
		log.Warn(ctx, "Keyword list unavailable, relying on remote classifier only: %v", err)
	}

	deps := pipeline.Deps{
		Media:       media.New(cfg.FFmpeg, exec, log),
		Transcriber: transcribe.New(cfg.OpenAI.APIKey, cfg.OpenAI.Language, exec, log),
		Resolver:    moderation.New(keywords, moderation.NewOpenAIClassifier(cfg.OpenAI.APIKey), log),
		Burner:      subtitle.New(cfg.Pipeline.FontSize, exec, log),
		Mixer:       soundboard.NewMixer(exec, log),
		Compositor:  overlay.New(exec, log),
		Extractor:   highlight.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log),
		Notifier:    notify.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log),
	}

	return &app{
		cfg:       cfg,
		logger:    log,
		processor: pipeline.New(cfg, deps, log),
	}, nil
}

// process runs one pipeline pass over a URL or local file.
func (a *app) process(ctx context.Context, source string) error {
	result, err := a.processor.Process(ctx, source)
	if err != nil {
		return err
	}
	for _, rec := range result.Failures.Records() {
		a.logger.Warn(ctx, "Stage %s failed: %v", rec.Stage, rec.Err)
	}
	a.logger.Info(ctx, "Final video: %s", result.FinalVideo)
	return nil
}

func (a *app) newSession() (*auth.Session, error) {
	return auth.NewSession(
		a.cfg.YouTube.ClientID,
		a.cfg.YouTube.ClientSecret,
		a.cfg.YouTube.RedirectURL,
		auth.NewFileStore(a.cfg.YouTube.TokenFile),
	)
}

func (a *app) newMonitor(session *auth.Session) (monitor.Monitor, storage.Store, error) {
	store, err := storage.New(a.cfg.Paths.State)
	if err != nil {
		return nil, nil, fmt.Errorf("open state store: %w", err)
	}
	m := monitor.New(session, store, a.process, a.logger, a.cfg.Pipeline.MaxConcurrent)
	return m, store, nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
		filepath.Dir(cfg.Paths.State),
		filepath.Dir(cfg.YouTube.TokenFile),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
