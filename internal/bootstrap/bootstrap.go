// Package bootstrap assembles the intent engine from configuration. It is
// shared by the API server, the miner worker and the CLI so every binary
// sees the same taxonomy, storage and learner wiring.
package bootstrap

import (
	"context"
	"fmt"

	"intent-engine/config"
	"intent-engine/internal/intent"
	"intent-engine/internal/intent/extractor"
	"intent-engine/internal/intent/learner"
	"intent-engine/internal/intent/repository"
	"intent-engine/internal/intent/repository/sqlite"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/internal/intent/usecase"
	"intent-engine/pkg/datemath"
	"intent-engine/pkg/log"
)

// Engine is a fully wired intent engine.
type Engine struct {
	Store   *taxonomy.Store
	UseCase intent.UseCase
	repo    repository.Repository
}

// Build wires taxonomy, date parser, extractor, storage, learner and
// usecase. An empty storage path runs without persistence.
func Build(ctx context.Context, l log.Logger, cfg *config.Config) (*Engine, error) {
	store, err := taxonomy.New(ctx, l, taxonomy.Options{
		OverlayPath: cfg.Intent.OverlayPath,
		Limits: taxonomy.Limits{
			MaxKeywordsPerIntent: cfg.Intent.MaxKeywordsPerIntent,
			MinKeywordLength:     cfg.Intent.MinKeywordLength,
			MaxKeywordLength:     cfg.Intent.MaxKeywordLength,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: taxonomy: %w", err)
	}

	dates, err := newDateParser(ctx, l, cfg.Intent)
	if err != nil {
		return nil, err
	}
	ext := extractor.New(dates)

	var repo repository.Repository
	if cfg.Storage.SQLitePath != "" {
		repo, err = sqlite.Open(ctx, l, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: storage: %w", err)
		}
	} else {
		l.Warn(ctx, "bootstrap: storage.sqlite_path is empty, running without persistence")
	}

	lr := learner.New(l, store, learner.Config{
		LearningRate:    cfg.Intent.LearningRate,
		UpdateThreshold: cfg.Intent.UpdateThreshold,
	})

	uc, err := usecase.New(l, store, ext, lr, repo, usecase.Config{
		TrustThreshold:   cfg.Intent.TrustThreshold,
		FallbackScore:    cfg.Intent.MinConfidenceScore,
		CacheSize:        cfg.Intent.CacheSize,
		MineLookback:     cfg.Mining.Lookback,
		MineMinFrequency: cfg.Mining.MinFrequency,
		MineMinScore:     cfg.Mining.MinScore,
	})
	if err != nil {
		closeRepo(repo)
		return nil, fmt.Errorf("bootstrap: usecase: %w", err)
	}
	if err := uc.LoadHistory(ctx); err != nil {
		l.Warnf(ctx, "bootstrap: learning history not restored: %v", err)
	}

	return &Engine{Store: store, UseCase: uc, repo: repo}, nil
}

// Close releases the storage handle.
func (e *Engine) Close() error {
	return closeRepo(e.repo)
}

func closeRepo(repo repository.Repository) error {
	if repo == nil {
		return nil
	}
	return repo.Close()
}

// newDateParser falls back to UTC on an invalid timezone, like a missing
// overlay falls back to defaults. A bad week start is a config error.
func newDateParser(ctx context.Context, l log.Logger, cfg config.IntentConfig) (*datemath.Parser, error) {
	var opts []datemath.Option
	if cfg.WeekStart != "" {
		day, err := datemath.ParseWeekday(cfg.WeekStart)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: intent.week_start: %w", err)
		}
		opts = append(opts, datemath.WithWeekStart(day))
	}

	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	p, err := datemath.NewParser(timezone, opts...)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		return datemath.NewParser("UTC", opts...)
	}
	return p, nil
}
