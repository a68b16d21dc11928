package scoring

import (
	"strings"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/textnorm"
)

// PatternConfidence is the fixed confidence of a fast-path hit on the 0..1
// scale.
const PatternConfidence = 1.0

// MatchPattern returns the first intent, in taxonomy order, whose pattern
// matches the lower-cased trimmed text. There is no ranking between
// multiple matches.
func MatchPattern(text string, tasks []taxonomy.TaskSpec) (intent.Pair, bool) {
	t := strings.TrimSpace(textnorm.Lower(text))
	if t == "" {
		return intent.Pair{}, false
	}
	for _, ts := range tasks {
		for _, spec := range ts.Intents {
			if spec.Pattern != nil && spec.Pattern.MatchString(t) {
				return spec.Pair, true
			}
		}
	}
	return intent.Pair{}, false
}
