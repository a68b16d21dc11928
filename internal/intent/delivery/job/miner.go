package job

import (
	"context"
	"errors"
	"time"

	"intent-engine/internal/intent"
	"intent-engine/pkg/log"
)

// DefaultInterval is used when the configured interval is not positive.
const DefaultInterval = time.Hour

// Miner periodically mines keywords from the recorded corpus.
type Miner struct {
	l        log.Logger
	uc       intent.UseCase
	interval time.Duration
	input    intent.MineInput
}

// NewMiner creates a Miner running every interval with the given options.
func NewMiner(l log.Logger, uc intent.UseCase, interval time.Duration, input intent.MineInput) *Miner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Miner{l: l, uc: uc, interval: interval, input: input}
}

// Run blocks until ctx is cancelled. A failed pass is logged and retried on
// the next tick; ErrNoCorpus stops the loop since no pass can succeed.
func (m *Miner) Run(ctx context.Context) error {
	m.l.Infof(ctx, "job.Miner: running every %s", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.l.Info(ctx, "job.Miner: stopped")
			return nil
		case <-ticker.C:
			if err := m.RunOnce(ctx); errors.Is(err, intent.ErrNoCorpus) {
				return err
			}
		}
	}
}

// RunOnce performs a single mining pass.
func (m *Miner) RunOnce(ctx context.Context) error {
	report, err := m.uc.MineRecent(ctx, m.input)
	if err != nil {
		m.l.Errorf(ctx, "job.Miner.RunOnce: %v", err)
		return err
	}
	if report.Total() > 0 {
		m.l.Infof(ctx, "job.Miner.RunOnce: scanned %d messages, added %d keywords", report.MessagesScanned, report.Total())
	} else {
		m.l.Debugf(ctx, "job.Miner.RunOnce: scanned %d messages, nothing new", report.MessagesScanned)
	}
	return nil
}
