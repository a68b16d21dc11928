package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"intent-engine/internal/intent"
)

// freeText fields keep the captured string as-is.
var freeText = map[string]struct{}{
	"name":          {},
	"description":   {},
	"query":         {},
	"reason":        {},
	"category_name": {},
	"first_name":    {},
	"last_name":     {},
	"sku":           {},
	"email":         {},
	"phone":         {},
	"status":        {},
	"period":        {},
}

var (
	intRe   = regexp.MustCompile(`^[-+]?\d+$`)
	floatRe = regexp.MustCompile(`^[-+]?\d+[.,]\d+$`)

	trueTokens  = map[string]struct{}{"true": {}, "yes": {}, "y": {}, "on": {}, "enabled": {}, "כן": {}, "נכון": {}, "פעיל": {}}
	falseTokens = map[string]struct{}{"false": {}, "no": {}, "n": {}, "off": {}, "disabled": {}, "לא": {}, "כבוי": {}}
)

// Coerce turns a numeric- or boolean-looking string into a typed Value.
// Anything else, including numbers that overflow, stays a string.
func Coerce(s string) intent.Value {
	t := strings.TrimSpace(s)
	switch {
	case intRe.MatchString(t):
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return intent.Int(n)
		}
	case floatRe.MatchString(t):
		if f, err := strconv.ParseFloat(strings.Replace(t, ",", ".", 1), 64); err == nil {
			return intent.Float(f)
		}
	}

	lower := strings.ToLower(t)
	if _, ok := trueTokens[lower]; ok {
		return intent.Bool(true)
	}
	if _, ok := falseTokens[lower]; ok {
		return intent.Bool(false)
	}
	return intent.String(s)
}

func coerceAll(out intent.Params) {
	for k, v := range out {
		if _, ok := freeText[k]; ok || v.Kind() != intent.KindString {
			continue
		}
		s, _ := v.Str()
		out[k] = Coerce(s)
	}
}
