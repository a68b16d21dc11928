package classifier

import (
	"intent-engine/internal/intent"
	"intent-engine/internal/intent/scoring"
	"intent-engine/internal/intent/taxonomy"
)

// CoarseSnapshot scores the single-level task table of snap. Ties keep the
// first task; no match yields general with score 0.
func CoarseSnapshot(snap *taxonomy.Snapshot, text string) (intent.TaskType, float64) {
	best, bestScore := intent.TaskGeneral, 0.0
	for _, row := range snap.Coarse() {
		if s := scoring.Score(text, row.Keywords); s > bestScore {
			best, bestScore = row.Task, s
		}
	}
	return best, bestScore
}

// Gate applies the trust threshold. A fine result above threshold, and any
// greeting, is kept; otherwise the coarse task is returned with intent
// general and the fixed low confidence.
func Gate(fine intent.Result, coarseTask intent.TaskType, threshold float64) (intent.Result, bool) {
	if fine.Source == intent.SourceGreeting || fine.Score > threshold {
		return fine, true
	}
	return intent.Result{
		TaskType:   coarseTask,
		IntentType: intent.IntentGeneral,
		Score:      CoarseScore,
		Source:     intent.SourceCoarse,
	}, false
}
