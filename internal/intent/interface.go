package intent

import (
	"context"
	"time"
)

// UseCase is the public surface of the intent engine consumed by the chat
// and HTTP delivery layers.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Classify resolves text to a (task, intent, score) triple. knownTaskType
	// may be empty; when set to a valid task the task-detection stage is skipped.
	Classify(ctx context.Context, text string, knownTaskType TaskType) Result

	// Understand classifies, applies the trust threshold gate and extracts
	// parameters for the resolved intent.
	Understand(ctx context.Context, text string) UnderstandOutput

	// ExtractParameters runs the extraction cascade of the given intent.
	ExtractParameters(ctx context.Context, text string, task TaskType, intent IntentType) Params

	// DescribeIntent returns a human readable description, or a generic
	// fallback when the pair is unknown.
	DescribeIntent(task TaskType, intent IntentType) string

	LearnFromFeedback(ctx context.Context, input FeedbackInput) error
	LearnFromExamples(ctx context.Context, examples []Example) error
	AnalyzeLearningHistory(ctx context.Context, days int) HistoryStats

	// MineRecent mines keywords from the classified-message corpus.
	MineRecent(ctx context.Context, input MineInput) (MiningReport, error)

	Taxonomy(ctx context.Context) TaxonomyOutput
	SearchIntents(ctx context.Context, query string, limit int) []IntentMatch
}

// FeedbackInput is a single correction coming from the chat layer.
type FeedbackInput struct {
	Text      string
	Predicted Pair
	Correct   Pair
}

// UnderstandOutput is the full answer for one utterance.
type UnderstandOutput struct {
	Result      Result
	Fine        Result
	Params      Params
	Description string
	Trusted     bool
}

// MineInput selects the corpus slice to mine.
type MineInput struct {
	Lookback     time.Duration // zero means the configured default
	MinFrequency int
	MinScore     float64
}

// IntentInfo describes one intent in a taxonomy dump.
type IntentInfo struct {
	Task        TaskType   `json:"task_type"`
	Intent      IntentType `json:"intent_type"`
	Description string     `json:"description"`
	Keywords    []string   `json:"keywords"`
	Pattern     string     `json:"pattern,omitempty"`
	Parameters  []string   `json:"parameters"`
}

// TaxonomyOutput is a read-only dump of the current snapshot.
type TaxonomyOutput struct {
	Version uint64       `json:"version"`
	Intents []IntentInfo `json:"intents"`
}

// IntentMatch is one fuzzy search hit.
type IntentMatch struct {
	Pair        Pair   `json:"pair"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}
