package usecase

import (
	"context"
	"strings"
	"time"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/repository"
)

// LearnFromFeedback validates a correction and hands it to the learner.
// The event is persisted when a repository is configured; failures there
// are logged only.
func (uc *implUseCase) LearnFromFeedback(ctx context.Context, input intent.FeedbackInput) error {
	if strings.TrimSpace(input.Text) == "" {
		return intent.ErrEmptyText
	}
	if !input.Correct.Task.Valid() {
		return intent.ErrUnknownTaskType
	}
	if !uc.store.Snapshot().Has(input.Correct) {
		return intent.ErrUnknownIntent
	}

	ev := uc.learner.LearnFromFeedback(ctx, input.Text, input.Predicted, input.Correct)
	if uc.repo != nil {
		if err := uc.repo.SaveEvent(ctx, ev); err != nil {
			uc.l.Warnf(ctx, "uc.LearnFromFeedback SaveEvent: %v", err)
		}
	}
	return nil
}

// LearnFromExamples adds example tokens to their intents.
func (uc *implUseCase) LearnFromExamples(ctx context.Context, examples []intent.Example) error {
	if len(examples) == 0 {
		return intent.ErrNoExamples
	}
	snap := uc.store.Snapshot()
	for _, ex := range examples {
		if !ex.Task.Valid() {
			return intent.ErrUnknownTaskType
		}
		if !snap.Has(ex.Pair()) {
			return intent.ErrUnknownIntent
		}
	}
	uc.learner.LearnFromExamples(ctx, examples)
	return nil
}

func (uc *implUseCase) AnalyzeLearningHistory(ctx context.Context, days int) intent.HistoryStats {
	return uc.learner.AnalyzeLearningHistory(days)
}

// MineRecent mines keywords from trusted messages recorded within the
// lookback window.
func (uc *implUseCase) MineRecent(ctx context.Context, input intent.MineInput) (intent.MiningReport, error) {
	if uc.repo == nil {
		return intent.MiningReport{}, intent.ErrNoCorpus
	}

	lookback := input.Lookback
	if lookback <= 0 {
		lookback = uc.cfg.MineLookback
	}
	minFreq := input.MinFrequency
	if minFreq <= 0 {
		minFreq = uc.cfg.MineMinFrequency
	}
	minScore := input.MinScore
	if minScore <= 0 {
		minScore = uc.cfg.MineMinScore
	}

	corpus, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		Since:    uc.clock().Add(-lookback),
		MinScore: minScore,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MineRecent ListMessages: %v", err)
		return intent.MiningReport{}, err
	}

	report := uc.learner.MineKeywords(ctx, corpus, minFreq)
	uc.l.Infof(ctx, "uc.MineRecent: window %s, %d messages, %d keywords added",
		lookback.Round(time.Minute), report.MessagesScanned, report.Total())
	return report, nil
}
