package taxonomy

import (
	"encoding/json"
	"fmt"
	"slices"

	"intent-engine/internal/intent"
	"intent-engine/pkg/textnorm"
)

// Overlay is the learned, persisted part of the taxonomy:
// task -> intent -> keywords. It is the only part the learner mutates.
type Overlay map[intent.TaskType]map[intent.IntentType][]string

// Clone returns a deep copy.
func (o Overlay) Clone() Overlay {
	out := make(Overlay, len(o))
	for task, intents := range o {
		m := make(map[intent.IntentType][]string, len(intents))
		for it, kws := range intents {
			m[it] = slices.Clone(kws)
		}
		out[task] = m
	}
	return out
}

// Keywords returns the learned keywords of pair (nil when none).
func (o Overlay) Keywords(p intent.Pair) []string {
	if intents, ok := o[p.Task]; ok {
		return intents[p.Intent]
	}
	return nil
}

// Contains reports whether kw is a learned keyword of pair.
func (o Overlay) Contains(p intent.Pair, kw string) bool {
	return slices.Contains(o.Keywords(p), kw)
}

// Append adds kw to pair unless already present. It reports whether the
// overlay changed.
func (o Overlay) Append(p intent.Pair, kw string) bool {
	if o.Contains(p, kw) {
		return false
	}
	intents, ok := o[p.Task]
	if !ok {
		intents = make(map[intent.IntentType][]string)
		o[p.Task] = intents
	}
	intents[p.Intent] = append(intents[p.Intent], kw)
	return true
}

// Remove drops every keyword in kws from pair and returns the removed ones.
func (o Overlay) Remove(p intent.Pair, kws []string) []string {
	intents, ok := o[p.Task]
	if !ok {
		return nil
	}
	current := intents[p.Intent]
	if len(current) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(kws))
	for _, kw := range kws {
		drop[kw] = struct{}{}
	}

	var removed []string
	kept := current[:0:0]
	for _, kw := range current {
		if _, ok := drop[kw]; ok {
			removed = append(removed, kw)
			continue
		}
		kept = append(kept, kw)
	}
	if len(kept) == 0 {
		delete(intents, p.Intent)
		if len(intents) == 0 {
			delete(o, p.Task)
		}
	} else {
		intents[p.Intent] = kept
	}
	return removed
}

// Size returns the total number of learned keywords.
func (o Overlay) Size() int {
	n := 0
	for _, intents := range o {
		for _, kws := range intents {
			n += len(kws)
		}
	}
	return n
}

// MarshalOverlay renders the persisted document layout.
func MarshalOverlay(o Overlay) ([]byte, error) {
	doc := make(map[string]map[string][]string, len(o))
	for task, intents := range o {
		m := make(map[string][]string, len(intents))
		for it, kws := range intents {
			m[string(it)] = kws
		}
		doc[string(task)] = m
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalOverlay parses a persisted overlay document. Keywords are
// normalized and deduplicated; structural validation against the defaults
// happens when a snapshot is built.
func UnmarshalOverlay(data []byte) (Overlay, error) {
	var doc map[string]map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy: parse overlay: %w", err)
	}
	o := make(Overlay, len(doc))
	for task, intents := range doc {
		for it, kws := range intents {
			p := intent.NewPair(task, it)
			for _, kw := range kws {
				if n := textnorm.Normalize(kw); n != "" {
					o.Append(p, n)
				}
			}
		}
	}
	return o, nil
}
