package taxonomy

import (
	"slices"

	"intent-engine/internal/intent"
)

// Editor applies learner mutations to a private overlay copy while keeping
// the taxonomy invariants: only known pairs, only keywords within the length
// limits, never more than MaxKeywordsPerIntent merged keywords per intent,
// and never touching built-in keywords.
type Editor struct {
	base    *Snapshot
	overlay Overlay
	limits  Limits
	changed bool
}

// Known reports whether pair exists in the taxonomy.
func (e *Editor) Known(p intent.Pair) bool { return e.base.Has(p) }

// KeywordCount returns the merged keyword count of pair.
func (e *Editor) KeywordCount(p intent.Pair) int {
	spec, ok := e.base.Lookup(p)
	if !ok {
		return 0
	}
	return len(spec.Builtin) + len(e.overlay.Keywords(p))
}

// Has reports whether kw is already a keyword of pair, built-in or learned.
func (e *Editor) Has(p intent.Pair, kw string) bool {
	spec, ok := e.base.Lookup(p)
	if !ok {
		return false
	}
	return slices.Contains(spec.Builtin, kw) || e.overlay.Contains(p, kw)
}

// Add appends kw to the overlay of pair. It returns false when the keyword
// is rejected or already present; overflow is dropped silently.
func (e *Editor) Add(p intent.Pair, kw string) bool {
	if !e.Known(p) || !e.limits.Accepts(kw) || e.Has(p, kw) {
		return false
	}
	if e.KeywordCount(p) >= e.limits.MaxKeywordsPerIntent {
		return false
	}
	e.overlay.Append(p, kw)
	e.changed = true
	return true
}

// Remove drops kws from the overlay of pair and returns what was removed.
// Built-in keywords are never affected.
func (e *Editor) Remove(p intent.Pair, kws []string) []string {
	removed := e.overlay.Remove(p, kws)
	if len(removed) > 0 {
		e.changed = true
	}
	return removed
}

// Limits returns the active limits.
func (e *Editor) Limits() Limits { return e.limits }
