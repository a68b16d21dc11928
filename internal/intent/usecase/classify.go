package usecase

import (
	"context"
	"strings"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/classifier"
	"intent-engine/internal/intent/repository"
	"intent-engine/internal/intent/taxonomy"
)

// Classify resolves text against the current taxonomy snapshot.
func (uc *implUseCase) Classify(ctx context.Context, text string, knownTaskType intent.TaskType) intent.Result {
	return uc.classify(uc.store.Snapshot(), text, knownTaskType)
}

func (uc *implUseCase) classify(snap *taxonomy.Snapshot, text string, known intent.TaskType) intent.Result {
	key := cacheKey{version: snap.Version(), known: known, text: text}
	if res, ok := uc.cache.Get(key); ok {
		return res
	}
	res := classifier.ClassifySnapshot(snap, text, known)
	uc.cache.Add(key, res)
	return res
}

// Understand classifies text, applies the trust gate and extracts the
// parameters of the resolved intent. Trusted non-greeting results are
// recorded into the mining corpus when a repository is configured.
func (uc *implUseCase) Understand(ctx context.Context, text string) intent.UnderstandOutput {
	snap := uc.store.Snapshot()

	fine := uc.classify(snap, text, "")
	coarse, _ := classifier.CoarseSnapshot(snap, text)
	res, trusted := classifier.Gate(fine, coarse, uc.cfg.TrustThreshold)
	if !trusted {
		res.Score = uc.cfg.FallbackScore
	}

	out := intent.UnderstandOutput{
		Result:      res,
		Fine:        fine,
		Params:      uc.extract(snap, text, res.Pair()),
		Description: describe(snap, res.Pair()),
		Trusted:     trusted,
	}

	if trusted && res.Source != intent.SourceGreeting {
		uc.record(ctx, text, res)
	}
	return out
}

func (uc *implUseCase) record(ctx context.Context, text string, res intent.Result) {
	if uc.repo == nil || strings.TrimSpace(text) == "" {
		return
	}
	_, err := uc.repo.SaveMessage(ctx, repository.SaveMessageOptions{
		Text:  text,
		Pair:  res.Pair(),
		Score: res.Score,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Understand SaveMessage: %v", err)
	}
}

// ExtractParameters runs the extraction cascade of (task, intentType).
// Unknown pairs yield an empty result rather than an error.
func (uc *implUseCase) ExtractParameters(ctx context.Context, text string, task intent.TaskType, intentType intent.IntentType) intent.Params {
	return uc.extract(uc.store.Snapshot(), text, intent.Pair{Task: task, Intent: intentType})
}

func (uc *implUseCase) extract(snap *taxonomy.Snapshot, text string, p intent.Pair) intent.Params {
	var declared []string
	if spec, ok := snap.Lookup(p); ok && p.Intent != intent.IntentGeneral {
		declared = spec.Parameters
	}
	return uc.extractor.Extract(text, p, declared)
}

// DescribeIntent returns the taxonomy description of the pair.
func (uc *implUseCase) DescribeIntent(task intent.TaskType, intentType intent.IntentType) string {
	return describe(uc.store.Snapshot(), intent.Pair{Task: task, Intent: intentType})
}

func describe(snap *taxonomy.Snapshot, p intent.Pair) string {
	if spec, ok := snap.Lookup(p); ok && spec.Description != "" {
		return spec.Description
	}
	return FallbackDescription
}
