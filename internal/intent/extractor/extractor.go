// Package extractor pulls structured parameters out of an utterance once
// its intent is known. Every intent owns an ordered cascade of steps; the
// first step that finds a field wins it.
package extractor

import (
	"regexp"
	"strings"
	"time"

	"intent-engine/internal/intent"
	"intent-engine/pkg/datemath"
	"intent-engine/pkg/textnorm"
)

// Extractor is stateless apart from its date parser and clock and is safe
// for concurrent use.
type Extractor struct {
	dates *datemath.Parser
	clock func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides time.Now as the reference for relative dates.
func WithClock(now func() time.Time) Option {
	return func(x *Extractor) { x.clock = now }
}

// New returns an Extractor resolving dates with dates.
func New(dates *datemath.Parser, opts ...Option) *Extractor {
	x := &Extractor{dates: dates, clock: time.Now}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// input carries the utterance in the forms the steps need.
type input struct {
	raw  string // NFC, trimmed, original case
	rest []byte // lower-cased raw with dates and consumed spans blanked
	now  time.Time
}

// relativeCountRe blanks "7 days"-style spans so their digits are never
// read as amounts or quantities.
var relativeCountRe = regexp.MustCompile(`\b\d{1,3}\s+(?:days?|weeks?|months?)\b|\d{1,3}\s+(?:ה)?(?:ימים|שבועות|חודשים)`)

func (x *Extractor) newInput(text string) *input {
	raw := strings.TrimSpace(text)
	in := &input{raw: raw, now: x.clock()}
	in.rest = []byte(x.dates.StripDates(textnorm.Lower(raw)))
	for _, loc := range relativeCountRe.FindAllIndex(in.rest, -1) {
		in.consume(loc[0], loc[1])
	}
	return in
}

func (in *input) consume(begin, end int) {
	for i := begin; i < end && i < len(in.rest); i++ {
		in.rest[i] = ' '
	}
}

// find runs re against the remaining text and returns the first capture
// group, consuming the whole match.
func (in *input) find(re *regexp.Regexp) (string, bool) {
	m := re.FindSubmatchIndex(in.rest)
	if m == nil || len(m) < 4 || m[2] < 0 {
		return "", false
	}
	v := string(in.rest[m[2]:m[3]])
	in.consume(m[0], m[1])
	return strings.TrimSpace(v), true
}

// step extracts one field family into out. Steps never overwrite a key
// another step already set.
type step func(x *Extractor, in *input, out intent.Params)

func set(out intent.Params, key string, v intent.Value) {
	if _, ok := out[key]; !ok {
		out[key] = v
	}
}

// Extract runs the cascade registered for pair. Keys outside declared are
// dropped; a nil declared keeps everything. Unknown pairs fall back to the
// task-level cascade, and unknown tasks yield an empty map.
func (x *Extractor) Extract(text string, pair intent.Pair, declared []string) intent.Params {
	out := intent.Params{}
	if strings.TrimSpace(text) == "" {
		return out
	}

	steps, ok := cascades[pair]
	if !ok {
		steps = taskFallback[pair.Task]
	}
	if len(steps) == 0 {
		return out
	}

	in := x.newInput(text)
	for _, s := range steps {
		s(x, in, out)
	}

	coerceAll(out)

	if declared != nil {
		allowed := make(map[string]struct{}, len(declared))
		for _, k := range declared {
			allowed[k] = struct{}{}
		}
		for k := range out {
			if _, ok := allowed[k]; !ok {
				delete(out, k)
			}
		}
	}
	return out
}
