package extractor

import (
	"regexp"

	"intent-engine/internal/intent"
)

// entity names as they appear before an identifier.
type entity struct {
	key string
	en  string
	he  string
}

var (
	productEntity  = entity{key: "product_id", en: `product|item`, he: `מוצר|פריט`}
	orderEntity    = entity{key: "order_id", en: `order`, he: `הזמנה|הזמנת`}
	customerEntity = entity{key: "customer_id", en: `customer|client`, he: `לקוח|לקוחה`}
	categoryEntity = entity{key: "category_id", en: `category`, he: `קטגוריה`}

	bareIDRe = regexp.MustCompile(`#\s*(\d+)\b`)
)

func idPatterns(e entity) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`\b(?:` + e.en + `)\s+(?:number|num|no\.?|id)\s*[:#]?\s*(\d+)\b`),
		regexp.MustCompile(`\b(?:` + e.en + `)\s*#\s*(\d+)\b`),
		regexp.MustCompile(`\b(?:` + e.en + `)\s*(?:id)?\s*[:=]\s*(\d+)\b`),
		regexp.MustCompile(`\b(?:` + e.en + `)\s+(\d+)\b`),
		regexp.MustCompile(`(?:` + e.he + `)\s*(?:מספר|מס['׳.]?)\s*#?\s*(\d+)`),
		regexp.MustCompile(`(?:` + e.he + `)\s*#?\s*(\d+)`),
	}
}

// idStep captures the identifier of e. With bare set, a lone "#N" is
// accepted when no entity-qualified form is present.
func idStep(e entity, bare bool) step {
	patterns := idPatterns(e)
	if bare {
		patterns = append(patterns, bareIDRe)
	}
	return func(_ *Extractor, in *input, out intent.Params) {
		if _, ok := out[e.key]; ok {
			return
		}
		for _, re := range patterns {
			if v, ok := in.find(re); ok {
				set(out, e.key, intent.String(v))
				return
			}
		}
	}
}
