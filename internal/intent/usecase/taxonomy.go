package usecase

import (
	"context"
	"slices"

	"github.com/sahilm/fuzzy"

	"intent-engine/internal/intent"
)

const defaultSearchLimit = 10

// Taxonomy dumps the current snapshot in declaration order.
func (uc *implUseCase) Taxonomy(ctx context.Context) intent.TaxonomyOutput {
	snap := uc.store.Snapshot()
	out := intent.TaxonomyOutput{Version: snap.Version()}
	for _, ts := range snap.Tasks() {
		for _, spec := range ts.Intents {
			info := intent.IntentInfo{
				Task:        spec.Pair.Task,
				Intent:      spec.Pair.Intent,
				Description: spec.Description,
				Keywords:    slices.Clone(spec.Keywords),
				Parameters:  slices.Clone(spec.Parameters),
			}
			if spec.Pattern != nil {
				info.Pattern = spec.Pattern.String()
			}
			out.Intents = append(out.Intents, info)
		}
	}
	return out
}

// intentSource exposes "task.intent description" lines to the fuzzy matcher.
type intentSource []intent.IntentInfo

func (s intentSource) String(i int) string {
	return string(s[i].Task) + "." + string(s[i].Intent) + " " + s[i].Description
}

func (s intentSource) Len() int { return len(s) }

// SearchIntents fuzzy-matches query against intent names and descriptions,
// best match first.
func (uc *implUseCase) SearchIntents(ctx context.Context, query string, limit int) []intent.IntentMatch {
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	src := intentSource(uc.Taxonomy(ctx).Intents)
	matches := fuzzy.FindFrom(query, src)

	out := make([]intent.IntentMatch, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		info := src[m.Index]
		out = append(out, intent.IntentMatch{
			Pair:        intent.Pair{Task: info.Task, Intent: info.Intent},
			Description: info.Description,
			Score:       m.Score,
		})
	}
	return out
}
