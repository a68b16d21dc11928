// Package learner adapts the taxonomy overlay from corrections, labeled
// examples and mined corpus keywords, and keeps the feedback history used
// for accuracy reporting.
package learner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/log"
	"intent-engine/pkg/textnorm"
)

// Store is the taxonomy the learner writes to.
type Store interface {
	Snapshot() *taxonomy.Snapshot
	Update(ctx context.Context, fn func(e *taxonomy.Editor)) (*taxonomy.Snapshot, error)
}

// Config carries tuning values read from configuration. LearningRate and
// UpdateThreshold are accepted and reported but do not influence learning.
type Config struct {
	LearningRate    float64
	UpdateThreshold float64
}

// DefaultConfig returns the stock reserved values.
func DefaultConfig() Config {
	return Config{LearningRate: 0.1, UpdateThreshold: 0.3}
}

// Learner is safe for concurrent use. Taxonomy writes are serialized by
// the store; the event log has its own lock.
type Learner struct {
	l     log.Logger
	store Store
	cfg   Config
	clock func() time.Time

	mu sync.RWMutex
	// TODO: cap this once AnalyzeLearningHistory reads from the event
	// repository instead of memory; it grows for the process lifetime.
	events []intent.LearningEvent
}

// Option configures a Learner.
type Option func(*Learner)

// WithClock overrides time.Now for event timestamps and history windows.
func WithClock(now func() time.Time) Option {
	return func(lr *Learner) { lr.clock = now }
}

// New returns a Learner writing to store.
func New(l log.Logger, store Store, cfg Config, opts ...Option) *Learner {
	lr := &Learner{l: l, store: store, cfg: cfg, clock: time.Now}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Config returns the configuration the learner was built with.
func (lr *Learner) Config() Config { return lr.cfg }

// candidates tokenizes text and keeps tokens within the keyword length limits.
func candidates(text string, limits taxonomy.Limits) []string {
	var out []string
	for _, tok := range textnorm.Tokenize(text) {
		if limits.Accepts(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// LearnFromFeedback records a correction and moves the tokens of text
// towards the correct intent: they are added to its overlay (up to the
// keyword cap) and removed from the overlay of the predicted intent when it
// differs. A persistence failure is logged; the new taxonomy stays live.
func (lr *Learner) LearnFromFeedback(ctx context.Context, text string, predicted, correct intent.Pair) intent.LearningEvent {
	ev := intent.LearningEvent{
		ID:        uuid.NewString(),
		Text:      text,
		Predicted: predicted,
		Correct:   correct,
		Timestamp: lr.clock(),
	}
	lr.mu.Lock()
	lr.events = append(lr.events, ev)
	lr.mu.Unlock()

	cands := candidates(text, lr.store.Snapshot().Limits())
	if len(cands) == 0 {
		return ev
	}

	var added, removed []string
	_, err := lr.store.Update(ctx, func(e *taxonomy.Editor) {
		if e.Known(correct) {
			for _, kw := range cands {
				if e.Add(correct, kw) {
					added = append(added, kw)
				}
			}
		} else {
			lr.l.Warnf(ctx, "learner.LearnFromFeedback: unknown correct intent %s", correct)
		}
		if predicted != correct {
			removed = e.Remove(predicted, cands)
		}
	})
	if err != nil {
		lr.l.Errorf(ctx, "learner.LearnFromFeedback: persist overlay: %v", err)
	}

	lr.l.Infof(ctx, "learner.LearnFromFeedback: %s -> %s, added %v, removed %v", predicted, correct, added, removed)
	return ev
}

// LearnFromExamples adds the tokens of every example to its intent. Nothing
// is removed, and the overlay is persisted once. It returns how many
// keywords were added.
func (lr *Learner) LearnFromExamples(ctx context.Context, examples []intent.Example) int {
	if len(examples) == 0 {
		return 0
	}

	limits := lr.store.Snapshot().Limits()
	added := 0
	_, err := lr.store.Update(ctx, func(e *taxonomy.Editor) {
		for _, ex := range examples {
			p := ex.Pair()
			if !e.Known(p) {
				lr.l.Warnf(ctx, "learner.LearnFromExamples: skipping unknown intent %s", p)
				continue
			}
			for _, kw := range candidates(ex.Text, limits) {
				if e.Add(p, kw) {
					added++
				}
			}
		}
	})
	if err != nil {
		lr.l.Errorf(ctx, "learner.LearnFromExamples: persist overlay: %v", err)
	}

	lr.l.Infof(ctx, "learner.LearnFromExamples: %d examples, %d keywords added", len(examples), added)
	return added
}

// AnalyzeLearningHistory reports accuracy over events in the trailing
// window of days. days <= 0 covers every event.
func (lr *Learner) AnalyzeLearningHistory(days int) intent.HistoryStats {
	var cutoff time.Time
	if days > 0 {
		cutoff = lr.clock().Add(-time.Duration(days) * 24 * time.Hour)
	}

	lr.mu.RLock()
	defer lr.mu.RUnlock()

	return summarize(lr.events, cutoff, days)
}

// Summarize computes history stats over events at or after cutoff. A zero
// cutoff includes everything.
func Summarize(events []intent.LearningEvent, cutoff time.Time, days int) intent.HistoryStats {
	return summarize(events, cutoff, days)
}

func summarize(events []intent.LearningEvent, cutoff time.Time, days int) intent.HistoryStats {
	stats := intent.HistoryStats{DaysAnalyzed: days}
	for _, ev := range events {
		if !cutoff.IsZero() && ev.Timestamp.Before(cutoff) {
			continue
		}
		stats.TotalFeedback++
		if ev.WasCorrect() {
			stats.CorrectPredictions++
		}
	}
	if stats.TotalFeedback > 0 {
		stats.Accuracy = float64(stats.CorrectPredictions) / float64(stats.TotalFeedback)
	}
	return stats
}

// Restore seeds the event log, typically from the event repository at
// startup. Events are appended in the given order.
func (lr *Learner) Restore(events []intent.LearningEvent) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lr.events = append(lr.events, events...)
}

// Events returns a copy of the event log.
func (lr *Learner) Events() []intent.LearningEvent {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	out := make([]intent.LearningEvent, len(lr.events))
	copy(out, lr.events)
	return out
}
