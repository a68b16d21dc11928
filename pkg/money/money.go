// Package money parses monetary amounts written in Israeli and
// international styles ("₪1,299.90", "1.299,90 ש\"ח", "$45").
package money

import (
	"regexp"
	"strconv"
	"strings"
)

// Match is an amount found in free text.
type Match struct {
	Value float64
	Raw   string
	Begin int
	End   int
}

var (
	amountRe = regexp.MustCompile(`(?:[₪$€£]\s?)?\d+(?:[.,]\d+)*(?:\s?(?:[₪$€£]|ש"ח|ש''ח|שח|שקלים|שקל|nis|ils|usd|eur|dollars?|shekels?)\b)?`)
	symbolRe = regexp.MustCompile(`[₪$€£]|ש"ח|ש''ח|שח|שקלים|שקל|(?i:nis|ils|usd|eur|dollars?|shekels?)`)
)

// Parse converts a single amount to float64. The rightmost of mixed
// separators is the decimal point; a lone comma or period followed by
// exactly three digits is a thousands separator.
func Parse(s string) (float64, bool) {
	s = symbolRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = normalizeSingle(s, ",")
	case lastDot >= 0:
		s = normalizeSingle(s, ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func normalizeSingle(s, sep string) string {
	parts := strings.Split(s, sep)
	if len(parts) > 2 {
		return strings.Join(parts, "")
	}
	if len(parts[1]) == 3 && parts[0] != "0" {
		return parts[0] + parts[1]
	}
	return parts[0] + "." + parts[1]
}

// Find returns every amount-looking number in text, in order.
func Find(text string) []Match {
	var out []Match
	for _, loc := range amountRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		if v, ok := Parse(raw); ok {
			out = append(out, Match{Value: v, Raw: strings.TrimSpace(raw), Begin: loc[0], End: loc[1]})
		}
	}
	return out
}

// HasCurrency reports whether s carries a currency symbol or unit.
func HasCurrency(s string) bool {
	return symbolRe.MatchString(s)
}
