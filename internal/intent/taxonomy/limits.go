package taxonomy

import "intent-engine/pkg/textnorm"

// Limits bound the size and shape of learned keywords.
type Limits struct {
	MaxKeywordsPerIntent int
	MinKeywordLength     int
	MaxKeywordLength     int
}

// Default limit values.
const (
	DefaultMaxKeywordsPerIntent = 20
	DefaultMinKeywordLength     = 2
	DefaultMaxKeywordLength     = 30
)

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{
		MaxKeywordsPerIntent: DefaultMaxKeywordsPerIntent,
		MinKeywordLength:     DefaultMinKeywordLength,
		MaxKeywordLength:     DefaultMaxKeywordLength,
	}
}

// withDefaults fills zero fields.
func (l Limits) withDefaults() Limits {
	if l.MaxKeywordsPerIntent <= 0 {
		l.MaxKeywordsPerIntent = DefaultMaxKeywordsPerIntent
	}
	if l.MinKeywordLength <= 0 {
		l.MinKeywordLength = DefaultMinKeywordLength
	}
	if l.MaxKeywordLength <= 0 {
		l.MaxKeywordLength = DefaultMaxKeywordLength
	}
	return l
}

// Accepts reports whether kw may be inserted as a learned keyword.
func (l Limits) Accepts(kw string) bool {
	n := textnorm.RuneLen(kw)
	return n >= l.MinKeywordLength && n <= l.MaxKeywordLength
}
