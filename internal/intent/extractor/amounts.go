package extractor

import (
	"regexp"

	"intent-engine/internal/intent"
	"intent-engine/pkg/money"
)

const amountExpr = `([₪$€£]?\s?\d+(?:[.,]\d+)*)`

var (
	betweenAmountRe = regexp.MustCompile(`(?:\bbetween|בין)\s*` + amountExpr + `\s*(?:and|to|-|עד|ל-?)\s*` + amountExpr)
	minAmountRe     = regexp.MustCompile(`(?:\b(?:more than|greater than|over|above|at least|min(?:imum)?(?:\s+amount)?)|מעל|יותר מ-?|לפחות|מינימום)\s*(?:of\s+)?` + amountExpr)
	maxAmountRe     = regexp.MustCompile(`(?:\b(?:less than|cheaper than|under|below|up to|at most|max(?:imum)?(?:\s+amount)?)|מתחת ל-?|פחות מ-?|עד|מקסימום)\s*(?:of\s+)?` + amountExpr)

	amountLabelRe = regexp.MustCompile(`(?:\b(?:amount|sum|total)|סכום|סך)\s*(?:of|is|:|=|-)?\s*` + amountExpr)

	salePriceRe = regexp.MustCompile(`(?:\b(?:sale price|sale|discount(?:ed)? price|on sale for)|מחיר מבצע|במבצע|מבצע)\s*(?:of|is|to|at|for|:|=|-)?\s*` + amountExpr)
	priceRes    = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:regular\s+)?price\s*(?:of\s+[^\d₪$€£]*?)?(?:to|is|at|of|:|=|-)?\s*` + amountExpr),
		regexp.MustCompile(`\b(?:costs?|costing|priced at|for|at)\s+` + amountExpr),
		regexp.MustCompile(`(?:במחיר|מחיר|עולה)\s*(?:של|:|-)?\s*` + amountExpr),
	}

	stockRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:stock|inventory|quantity|qty)\b\D{0,40}?(?:to|=|:|of)?\s*(\d+)\b`),
		regexp.MustCompile(`\b(\d+)\s*(?:units?|pcs|pieces|items?|יחידות|יח['׳]?)`),
		regexp.MustCompile(`(?:מלאי|כמות)\D{0,40}?(\d+)`),
	}
	lowStockRe = regexp.MustCompile(`(?:\b(?:below|under|less than|fewer than)|מתחת ל-?|פחות מ-?)\s*(\d+)\b`)

	limitRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:top|first|limit|best)\s*[:=]?\s*(\d+)\b`),
		regexp.MustCompile(`\b(\d+)\s+(?:(?:best|top|latest|recent|last|new)\s+)?(?:orders|products|customers|items|results|categories)\b`),
		regexp.MustCompile(`\b(\d+)\s+(?:ה)?(?:מוצרים|הזמנות|לקוחות|קטגוריות|אחרונים|אחרונות)`),
	}
)

func findAmount(in *input, re *regexp.Regexp) (float64, bool) {
	raw, ok := in.find(re)
	if !ok {
		return 0, false
	}
	return money.Parse(raw)
}

// amountRangeStep routes directional amounts into min_amount/max_amount.
func amountRangeStep(_ *Extractor, in *input, out intent.Params) {
	if m := betweenAmountRe.FindSubmatchIndex(in.rest); m != nil {
		lo, okLo := money.Parse(string(in.rest[m[2]:m[3]]))
		hi, okHi := money.Parse(string(in.rest[m[4]:m[5]]))
		if okLo && okHi {
			if hi < lo {
				lo, hi = hi, lo
			}
			in.consume(m[0], m[1])
			set(out, "min_amount", intent.Float(lo))
			set(out, "max_amount", intent.Float(hi))
			return
		}
	}
	if v, ok := findAmount(in, minAmountRe); ok {
		set(out, "min_amount", intent.Float(v))
	}
	if v, ok := findAmount(in, maxAmountRe); ok {
		set(out, "max_amount", intent.Float(v))
	}
}

// plainAmountStep captures an undirected amount: a labeled one first, then
// one carrying a currency, then the first number left.
func plainAmountStep(_ *Extractor, in *input, out intent.Params) {
	if _, ok := out["amount"]; ok {
		return
	}
	if v, ok := findAmount(in, amountLabelRe); ok {
		set(out, "amount", intent.Float(v))
		return
	}
	found := money.Find(string(in.rest))
	for _, m := range found {
		if money.HasCurrency(m.Raw) {
			in.consume(m.Begin, m.End)
			set(out, "amount", intent.Float(m.Value))
			return
		}
	}
	if len(found) > 0 {
		in.consume(found[0].Begin, found[0].End)
		set(out, "amount", intent.Float(found[0].Value))
	}
}

// priceStep captures sale_price before regular_price so "sale price 80"
// never lands in regular_price.
func priceStep(_ *Extractor, in *input, out intent.Params) {
	if v, ok := findAmount(in, salePriceRe); ok {
		set(out, "sale_price", intent.Float(v))
	}
	for _, re := range priceRes {
		if v, ok := findAmount(in, re); ok {
			set(out, "regular_price", intent.Float(v))
			return
		}
	}
	for _, m := range money.Find(string(in.rest)) {
		if money.HasCurrency(m.Raw) {
			in.consume(m.Begin, m.End)
			set(out, "regular_price", intent.Float(m.Value))
			return
		}
	}
}

func firstMatch(key string, res ...*regexp.Regexp) step {
	return func(_ *Extractor, in *input, out intent.Params) {
		if _, ok := out[key]; ok {
			return
		}
		for _, re := range res {
			if v, ok := in.find(re); ok {
				set(out, key, intent.String(v))
				return
			}
		}
	}
}

var (
	stockStep    = firstMatch("stock_quantity", stockRes...)
	lowStockStep = firstMatch("stock_quantity", lowStockRe)
	limitStep    = firstMatch("limit", limitRes...)
)
