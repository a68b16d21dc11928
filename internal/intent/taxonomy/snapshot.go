package taxonomy

import (
	"regexp"
	"slices"

	"intent-engine/internal/intent"
)

// IntentSpec is the merged view of one intent: built-in definition plus
// learned keywords.
type IntentSpec struct {
	Pair        intent.Pair
	Description string
	Pattern     *regexp.Regexp
	Parameters  []string
	Builtin     []string
	Learned     []string
	Keywords    []string
}

// TaskSpec groups the intents of one task in declaration order.
type TaskSpec struct {
	Task    intent.TaskType
	Intents []*IntentSpec
}

// Snapshot is an immutable taxonomy state. Readers load one snapshot per call
// and never see a partially applied mutation. Slices returned by accessors
// must not be modified.
type Snapshot struct {
	version   uint64
	limits    Limits
	greetings []string
	coarse    []CoarseEntry
	tasks     []TaskSpec
	index     map[intent.Pair]*IntentSpec
	overlay   Overlay
}

// buildSnapshot merges defaults with ov. Overlay entries for unknown pairs
// and keywords that break the limits are dropped and reported.
func buildSnapshot(d *Defaults, ov Overlay, limits Limits, version uint64) (*Snapshot, []string) {
	s := &Snapshot{
		version:   version,
		limits:    limits,
		greetings: d.Greetings,
		coarse:    d.Coarse,
		index:     make(map[intent.Pair]*IntentSpec),
		overlay:   make(Overlay),
	}

	var dropped []string
	known := make(map[intent.Pair]struct{})

	for _, td := range d.Tasks {
		ts := TaskSpec{Task: td.Task}
		for _, id := range td.Intents {
			known[id.Pair] = struct{}{}
			spec := &IntentSpec{
				Pair:        id.Pair,
				Description: id.Description,
				Pattern:     id.Pattern,
				Parameters:  id.Parameters,
				Builtin:     id.Keywords,
				Keywords:    slices.Clone(id.Keywords),
			}
			for _, kw := range ov.Keywords(id.Pair) {
				if slices.Contains(spec.Keywords, kw) {
					continue
				}
				if !limits.Accepts(kw) || len(spec.Keywords) >= limits.MaxKeywordsPerIntent {
					dropped = append(dropped, id.Pair.String()+":"+kw)
					continue
				}
				spec.Keywords = append(spec.Keywords, kw)
				spec.Learned = append(spec.Learned, kw)
				s.overlay.Append(id.Pair, kw)
			}
			ts.Intents = append(ts.Intents, spec)
			s.index[id.Pair] = spec
		}
		s.tasks = append(s.tasks, ts)
	}

	for task, intents := range ov {
		for it := range intents {
			p := intent.Pair{Task: task, Intent: it}
			if _, ok := known[p]; !ok {
				dropped = append(dropped, p.String())
			}
		}
	}
	slices.Sort(dropped)

	return s, dropped
}

// Version increases by one with every published mutation.
func (s *Snapshot) Version() uint64 { return s.version }

// Limits returns the limits the snapshot was built with.
func (s *Snapshot) Limits() Limits { return s.limits }

// Greetings returns the normalized greeting phrases.
func (s *Snapshot) Greetings() []string { return s.greetings }

// Coarse returns the single-level task keyword table.
func (s *Snapshot) Coarse() []CoarseEntry { return s.coarse }

// Tasks returns tasks and intents in deterministic order.
func (s *Snapshot) Tasks() []TaskSpec { return s.tasks }

// Task returns the spec of one task.
func (s *Snapshot) Task(task intent.TaskType) (TaskSpec, bool) {
	for _, ts := range s.tasks {
		if ts.Task == task {
			return ts, true
		}
	}
	return TaskSpec{}, false
}

// Lookup returns the merged spec of pair.
func (s *Snapshot) Lookup(p intent.Pair) (*IntentSpec, bool) {
	spec, ok := s.index[p]
	return spec, ok
}

// Has reports whether pair is part of the taxonomy.
func (s *Snapshot) Has(p intent.Pair) bool {
	_, ok := s.index[p]
	return ok
}

// Overlay returns a copy of the effective overlay.
func (s *Snapshot) Overlay() Overlay { return s.overlay.Clone() }
