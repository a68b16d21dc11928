package usecase

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/classifier"
	"intent-engine/internal/intent/extractor"
	"intent-engine/internal/intent/learner"
	"intent-engine/internal/intent/repository"
	"intent-engine/internal/intent/taxonomy"
	pkgLog "intent-engine/pkg/log"
)

// Config tunes the use case. Zero fields take the defaults below.
// FallbackScore is the confidence reported for gated (coarse) results.
type Config struct {
	TrustThreshold   float64
	FallbackScore    float64
	CacheSize        int
	MineLookback     time.Duration
	MineMinFrequency int
	MineMinScore     float64
}

const (
	DefaultCacheSize        = 1024
	DefaultMineLookback     = 7 * 24 * time.Hour
	DefaultMineMinFrequency = 3
)

// FallbackDescription is returned for pairs missing from the taxonomy.
const FallbackDescription = "General request"

func (c Config) withDefaults() Config {
	if c.TrustThreshold <= 0 {
		c.TrustThreshold = classifier.TrustThreshold
	}
	if c.FallbackScore <= 0 {
		c.FallbackScore = classifier.CoarseScore
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.MineLookback <= 0 {
		c.MineLookback = DefaultMineLookback
	}
	if c.MineMinFrequency <= 0 {
		c.MineMinFrequency = DefaultMineMinFrequency
	}
	if c.MineMinScore <= 0 {
		c.MineMinScore = c.TrustThreshold
	}
	return c
}

// cacheKey ties a classification to the snapshot it was computed on, so
// entries go stale as soon as the taxonomy changes.
type cacheKey struct {
	version uint64
	known   intent.TaskType
	text    string
}

type implUseCase struct {
	l         pkgLog.Logger
	store     *taxonomy.Store
	extractor *extractor.Extractor
	learner   *learner.Learner
	repo      repository.Repository
	cache     *lru.Cache[cacheKey, intent.Result]
	cfg       Config
	clock     func() time.Time
}

// New creates the intent UseCase. repo may be nil, in which case corpus
// recording, event persistence and mining are disabled.
func New(
	l pkgLog.Logger,
	store *taxonomy.Store,
	ext *extractor.Extractor,
	lr *learner.Learner,
	repo repository.Repository,
	cfg Config,
) (*implUseCase, error) {
	cfg = cfg.withDefaults()
	cache, err := lru.New[cacheKey, intent.Result](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("uc.New: cache: %w", err)
	}
	return &implUseCase{
		l:         l,
		store:     store,
		extractor: ext,
		learner:   lr,
		repo:      repo,
		cache:     cache,
		cfg:       cfg,
		clock:     time.Now,
	}, nil
}

// LoadHistory seeds the learner's event log from the repository so accuracy
// reports survive restarts.
func (uc *implUseCase) LoadHistory(ctx context.Context) error {
	if uc.repo == nil {
		return nil
	}
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoadHistory ListEvents: %v", err)
		return err
	}
	uc.learner.Restore(events)
	uc.l.Infof(ctx, "uc.LoadHistory: restored %d learning events", len(events))
	return nil
}
var _ intent.UseCase = (*implUseCase)(nil)
