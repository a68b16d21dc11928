// Package classifier resolves an utterance to a (task, intent, score) triple
// over one taxonomy snapshot.
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/scoring"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/textnorm"
)

// Fixed scores of the short-circuit stages and the trust gate.
const (
	GreetingScore     = 10.0
	PatternMatchScore = 20.0 * scoring.PatternConfidence
	TrustThreshold    = 15.0
	CoarseScore       = 0.5
	MaxGreetingLength = 5
)

// Snapshotter hands out the current taxonomy.
type Snapshotter interface {
	Snapshot() *taxonomy.Snapshot
}

// Classifier is safe for concurrent use: every call reads one snapshot.
type Classifier struct {
	src Snapshotter
}

// New returns a Classifier reading from src.
func New(src Snapshotter) *Classifier {
	return &Classifier{src: src}
}

// Classify runs greeting short-circuit, pattern fast path, task detection
// and intent detection. knownTaskType, when valid, restricts the fast path
// and skips task detection. It never fails.
func (c *Classifier) Classify(text string, knownTaskType intent.TaskType) intent.Result {
	return ClassifySnapshot(c.src.Snapshot(), text, knownTaskType)
}

// Coarse runs the single-level task classifier.
func (c *Classifier) Coarse(text string) (intent.TaskType, float64) {
	return CoarseSnapshot(c.src.Snapshot(), text)
}

// ClassifySnapshot is Classify against an explicit snapshot.
func ClassifySnapshot(snap *taxonomy.Snapshot, text string, knownTaskType intent.TaskType) intent.Result {
	if strings.TrimSpace(text) == "" {
		return none(intent.TaskGeneral)
	}

	if IsGreeting(text, snap.Greetings()) {
		return intent.Result{
			TaskType:   intent.TaskGeneral,
			IntentType: intent.IntentGreeting,
			Score:      GreetingScore,
			Source:     intent.SourceGreeting,
		}
	}

	tasks := snap.Tasks()
	known, hasKnown := snap.Task(knownTaskType)
	if hasKnown {
		tasks = []taxonomy.TaskSpec{known}
	}

	if p, ok := scoring.MatchPattern(text, tasks); ok {
		return intent.Result{
			TaskType:   p.Task,
			IntentType: p.Intent,
			Score:      PatternMatchScore,
			Source:     intent.SourcePattern,
		}
	}

	task := known
	if !hasKnown {
		task = detectTask(text, tasks)
	}
	return detectIntent(text, task)
}

// detectTask sums keyword scores over every intent of each task. The first
// task with the strictly highest positive total wins.
func detectTask(text string, tasks []taxonomy.TaskSpec) taxonomy.TaskSpec {
	var (
		best      taxonomy.TaskSpec
		bestScore float64
		found     bool
	)
	for _, ts := range tasks {
		var total float64
		for _, spec := range ts.Intents {
			total += scoring.Score(text, spec.Keywords)
		}
		if total > bestScore {
			best, bestScore, found = ts, total, true
		}
	}
	if !found {
		for _, ts := range tasks {
			if ts.Task == intent.TaskGeneral {
				return ts
			}
		}
		return taxonomy.TaskSpec{Task: intent.TaskGeneral}
	}
	return best
}

// detectIntent picks the intent with the strictly highest keyword score.
func detectIntent(text string, task taxonomy.TaskSpec) intent.Result {
	var (
		best      intent.IntentType
		bestScore float64
	)
	for _, spec := range task.Intents {
		if s := scoring.Score(text, spec.Keywords); s > bestScore {
			best, bestScore = spec.Pair.Intent, s
		}
	}
	if bestScore == 0 {
		return none(task.Task)
	}
	return intent.Result{
		TaskType:   task.Task,
		IntentType: best,
		Score:      bestScore,
		Source:     intent.SourceKeywords,
	}
}

func none(task intent.TaskType) intent.Result {
	return intent.Result{
		TaskType:   task,
		IntentType: intent.IntentGeneral,
		Score:      0,
		Source:     intent.SourceNone,
	}
}

// hebrewPrefixes are one-letter conjunctions and prepositions that Hebrew
// glues to the following word ("ושלום", "הבוקר טוב").
var hebrewPrefixes = []string{"ו", "ה", "ב", "ל"}

// IsGreeting reports whether text is short enough to be small talk or holds
// a greeting phrase as whole words. Hebrew greetings also match with one
// prefix letter attached.
func IsGreeting(text string, greetings []string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if textnorm.RuneLen(trimmed) <= MaxGreetingLength {
		return true
	}

	padded := " " + textnorm.Words(trimmed) + " "
	for _, g := range greetings {
		w := textnorm.Words(g)
		if w == "" {
			continue
		}
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
		if r, _ := utf8.DecodeRuneInString(w); !unicode.Is(unicode.Hebrew, r) {
			continue
		}
		for _, p := range hebrewPrefixes {
			if strings.Contains(padded, " "+p+w+" ") {
				return true
			}
		}
	}
	return false
}
