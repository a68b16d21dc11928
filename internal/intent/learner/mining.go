package learner

import (
	"context"
	"slices"
	"strings"
	"unicode"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/textnorm"
)

type tokenCount struct {
	token string
	count int
}

// MineKeywords counts, per intent, in how many distinct messages each
// token occurs. Tokens seen in at least minFrequency messages are added to
// the intent, most frequent first, until the keyword cap is reached. Stop
// words, numbers and the catch-all intents are ignored. The overlay is
// persisted once.
func (lr *Learner) MineKeywords(ctx context.Context, corpus []intent.CorpusMessage, minFrequency int) intent.MiningReport {
	report := intent.MiningReport{MessagesScanned: len(corpus), KeywordsAdded: map[intent.Pair][]string{}}
	if len(corpus) == 0 {
		return report
	}
	if minFrequency < 1 {
		minFrequency = 1
	}

	limits := lr.store.Snapshot().Limits()
	ranked := rank(corpus, limits, minFrequency)
	if len(ranked) == 0 {
		return report
	}

	pairs := make([]intent.Pair, 0, len(ranked))
	for p := range ranked {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(a, b intent.Pair) int { return strings.Compare(a.String(), b.String()) })

	_, err := lr.store.Update(ctx, func(e *taxonomy.Editor) {
		for _, p := range pairs {
			if !e.Known(p) {
				continue
			}
			for _, tc := range ranked[p] {
				if e.Add(p, tc.token) {
					report.KeywordsAdded[p] = append(report.KeywordsAdded[p], tc.token)
				}
			}
		}
	})
	if err != nil {
		lr.l.Errorf(ctx, "learner.MineKeywords: persist overlay: %v", err)
	}

	lr.l.Infof(ctx, "learner.MineKeywords: scanned %d messages, added %d keywords", report.MessagesScanned, report.Total())
	return report
}

func rank(corpus []intent.CorpusMessage, limits taxonomy.Limits, minFrequency int) map[intent.Pair][]tokenCount {
	counts := map[intent.Pair]map[string]int{}
	seen := map[intent.Pair]map[string]struct{}{}

	for _, msg := range corpus {
		p := intent.Pair{Task: msg.Task, Intent: msg.Intent}
		if p.Intent == intent.IntentGeneral || p.Intent == intent.IntentGreeting {
			continue
		}
		norm := textnorm.Normalize(msg.Text)
		if norm == "" {
			continue
		}
		if seen[p] == nil {
			seen[p] = map[string]struct{}{}
			counts[p] = map[string]int{}
		}
		if _, dup := seen[p][norm]; dup {
			continue
		}
		seen[p][norm] = struct{}{}

		for _, tok := range textnorm.Tokenize(norm) {
			if textnorm.IsStopWord(tok) || isNumber(tok) || !limits.Accepts(tok) {
				continue
			}
			counts[p][tok]++
		}
	}

	out := map[intent.Pair][]tokenCount{}
	for p, toks := range counts {
		var list []tokenCount
		for tok, n := range toks {
			if n >= minFrequency {
				list = append(list, tokenCount{token: tok, count: n})
			}
		}
		if len(list) == 0 {
			continue
		}
		slices.SortFunc(list, func(a, b tokenCount) int {
			if a.count != b.count {
				return b.count - a.count
			}
			return strings.Compare(a.token, b.token)
		})
		out[p] = list
	}
	return out
}

func isNumber(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return tok != ""
}
