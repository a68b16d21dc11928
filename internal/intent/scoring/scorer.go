// Package scoring holds the two pure matching primitives of the classifier:
// the weighted keyword scorer and the regex fast path.
package scoring

import (
	"strings"

	"intent-engine/pkg/textnorm"
)

// Scoring weights. Downstream thresholds depend on their magnitude.
const (
	PrefixBonus      = 1.8
	WholeWordBonus   = 1.3
	PhraseBonus      = 1.5
	RepeatStep       = 0.2
	RepeatCap        = 3
	DiversityStep    = 0.1
	DiversityCap     = 5
	phraseMinTokens  = 3
	baseLengthFactor = 2.0
)

// Score rates how strongly text matches keywords. Each matching keyword
// contributes half its length, boosted when it opens the text, stands as a
// whole word, is a phrase of three or more words, or repeats. Only the best
// score per distinct keyword counts, and matches across several distinct
// keywords earn a diversity bonus. The result is 0 when nothing matches.
func Score(text string, keywords []string) float64 {
	if len(keywords) == 0 || text == "" {
		return 0
	}

	lower := textnorm.Lower(text)
	padded := " " + lower + " "

	best := make(map[string]float64, len(keywords))
	for _, raw := range keywords {
		kw := textnorm.Lower(raw)
		if kw == "" || !strings.Contains(lower, kw) {
			continue
		}

		s := float64(textnorm.RuneLen(kw)) / baseLengthFactor
		if strings.HasPrefix(lower, kw) {
			s *= PrefixBonus
		}
		if strings.Contains(padded, " "+kw+" ") {
			s *= WholeWordBonus
		}
		if len(strings.Fields(kw)) >= phraseMinTokens {
			s *= PhraseBonus
		}
		if n := strings.Count(lower, kw); n > 1 {
			s *= 1 + RepeatStep*float64(min(n, RepeatCap))
		}

		if s > best[kw] {
			best[kw] = s
		}
	}

	if len(best) == 0 {
		return 0
	}

	// Sum in keyword order so float addition is reproducible.
	var total float64
	seen := make(map[string]struct{}, len(best))
	for _, raw := range keywords {
		kw := textnorm.Lower(raw)
		s, ok := best[kw]
		if !ok {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		total += s
	}

	if n := len(best); n > 1 {
		total *= 1 + DiversityStep*float64(min(n, DiversityCap))
	}
	return total
}
