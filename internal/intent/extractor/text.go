package extractor

import (
	"regexp"
	"strings"

	"intent-engine/internal/intent"
	"intent-engine/pkg/textnorm"
)

// maxLeadNameLength bounds the bare-sentence name heuristic.
const maxLeadNameLength = 50

const labelSep = `\s*(?::|=|\s-\s)\s*`

func labeled(labels string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[\n,;]\s*|\s)(?:` + labels + `)` + labelSep + `([^,;\n]+)`)
}

var (
	quotedRe = regexp.MustCompile(`["“”„]([^"“”„]{2,})["“”„]|'([^']{2,})'`)

	productNameRes = []*regexp.Regexp{
		labeled(`product name|name|title|שם המוצר|שם`),
		quotedRe,
		regexp.MustCompile(`(?i)\b(?:called|named|titled)\s+(.+?)(?:\s+(?:with|for|at|priced|price|costing|in|that|and)\b|[,;\n.]|$)`),
		regexp.MustCompile(`(?:בשם|שנקרא|שנקראת)\s+(.+?)(?:\s+(?:עם|במחיר|ב-?\d)|[,;\n.]|$)`),
	}
	productCommandRe = regexp.MustCompile(`(?i)^(?:please\s+)?(?:add|create|new|update|edit|change|delete|remove|show|get|find|check)\s+(?:the\s+|a\s+)?(?:new\s+)?(?:product|item)s?\s*[:-]?\s*|^(?:הוסף|צור|עדכן|ערוך|מחק|הסר|הצג|בדוק)\s+(?:את\s+)?(?:ה)?(?:מוצר|פריט)\s*(?:חדש)?\s*[:-]?\s*`)
	stockCommandRe   = regexp.MustCompile(`(?i)^(?:please\s+)?(?:check\s+)?(?:stock|inventory)\s+(?:level\s+)?(?:of|for)\s+(?:the\s+)?(?:product\s+)?|^(?:בדוק\s+)?(?:מלאי|כמה יש במלאי)\s+(?:של|ל)\s*(?:ה)?(?:מוצר\s+)?`)
	nameStopRe       = regexp.MustCompile(`(?i)\s+(?:with|for|at|priced|price|costing|in|that|sku|to|qty|quantity|stock)\b|[,;.]|\s+(?:עם|במחיר|ב-?\d|מחיר)|$`)

	descriptionRes = []*regexp.Regexp{
		labeled(`description|desc|תיאור`),
		regexp.MustCompile(`(?i)\b(?:about|described as)\s+(.+?)(?:[,;\n]|$)`),
		regexp.MustCompile(`(?i)\bwith\s+(.+?)(?:[,;\n]|$)`),
		regexp.MustCompile(`(?:^|\s)(?:עם|על)\s+(.+?)(?:[,;\n]|$)`),
	}
	descriptionRejectRe = regexp.MustCompile(`(?i)^(?:\d|[₪$€£]|(?:a\s+|the\s+)?(?:price|sale|sku|stock|quantity|qty|email|phone|status|מחיר|מק"?ט|מלאי|כמות|מייל|טלפון))`)

	skuRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bsku\s*[:#=-]?\s*([A-Za-z0-9][A-Za-z0-9_-]*)`),
		regexp.MustCompile(`מק["״']?ט\s*[:#-]?\s*([A-Za-z0-9][A-Za-z0-9_-]*)`),
	}

	categoriesRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcategor(?:y|ies)` + labelSep + `([^;\n]+)`),
		regexp.MustCompile(`(?i)\b(?:in|to|under|into)\s+(?:the\s+)?categor(?:y|ies)\s+["']?([^,;\n"']+)`),
		regexp.MustCompile(`(?:בקטגוריה|לקטגוריה|קטגוריות|קטגוריה)\s*[:-]?\s*([^,;\n]+)`),
	}
	listSplitRe = regexp.MustCompile(`\s*(?:,|/|\band\b|\s+ו(?:-)?)\s*`)

	queryRes = []*regexp.Regexp{
		labeled(`query|search|חיפוש`),
		regexp.MustCompile(`(?i)\b(?:search|find|look)\s+(?:for\s+)?(?:products?\s+)?(?:named|called|with|matching|like)?\s*["']?(.+?)["']?\s*(?:\b(?:under|over|below|above|less than|more than|between|cheaper than|in categor(?:y|ies))\b|[,;\n]|$)`),
		regexp.MustCompile(`(?:חפש|מצא|חיפוש)\s+(?:את\s+)?(?:מוצר(?:ים)?\s+)?(.+?)\s*(?:מתחת|מעל|בין|בקטגוריה|[,;\n]|$)`),
	}

	reasonRes = []*regexp.Regexp{
		labeled(`reason|סיבה`),
		regexp.MustCompile(`(?i)\b(?:because(?:\s+of)?|due to|since)\s+(.+?)\s*$`),
		regexp.MustCompile(`(?:בגלל|מכיוון ש|כי)\s*(.+?)\s*$`),
	}

	categoryNameRes = []*regexp.Regexp{
		labeled(`category name|name|שם הקטגוריה|שם`),
		quotedRe,
		regexp.MustCompile(`(?i)\b(?:called|named)\s+(.+?)(?:\s+(?:with|for)\b|[,;\n.]|$)`),
		regexp.MustCompile(`(?i)\b(?:rename|change|update)\b.*?\bto\s+["']?(.+?)["']?\s*$`),
		regexp.MustCompile(`(?:בשם|שנקראת)\s+(.+?)(?:\s+עם|[,;\n.]|$)`),
	}
	categoryCommandRe = regexp.MustCompile(`(?i)^(?:please\s+)?(?:add|create|new|delete|remove)\s+(?:the\s+|a\s+)?(?:new\s+)?category\s*[:-]?\s*|^(?:הוסף|צור|מחק|הסר)\s+(?:את\s+)?(?:ה)?קטגוריה\s*(?:חדשה)?\s*[:-]?\s*`)

	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+`)
	phoneRe = regexp.MustCompile(`(?:\+972[-\s]?|\b0)(?:[2-9]\d?)[-\s]?\d{3}[-\s]?\d{4}\b|\+\d{1,3}[-\s]?\d{2,4}[-\s]?\d{3,4}[-\s]?\d{3,4}\b`)

	firstNameRe = regexp.MustCompile(`(?i)(?:first\s*name|שם פרטי)` + labelSep + `([\p{L}'-]+)`)
	lastNameRe  = regexp.MustCompile(`(?i)(?:last\s*name|surname|שם משפחה)` + labelSep + `([\p{L}'-]+)`)
	fullNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:^|[\n,;]\s*|\s)(?:full name|name|שם מלא|שם)` + labelSep + `(\p{L}[\p{L}'-]*)(?:\s+(\p{L}[\p{L}'-]*))?`),
		regexp.MustCompile(`(?i)\b(?:named|called)\s+(\p{L}[\p{L}'-]*)(?:\s+(\p{L}[\p{L}'-]*))?`),
		regexp.MustCompile(`(?:בשם|ששמו|ששמה)\s+(\p{L}[\p{L}'-]*)(?:\s+(\p{L}[\p{L}'-]*))?`),
		regexp.MustCompile(`(?i)\b(?:customer|client)\s+(\p{L}[\p{L}'-]*)(?:\s+(\p{L}[\p{L}'-]*))?`),
		regexp.MustCompile(`(?:לקוח|לקוחה)\s+(?:חדש(?:ה)?\s+)?(\p{L}[\p{L}'-]*)(?:\s+(\p{L}[\p{L}'-]*))?`),
	}
	nameStopWords = map[string]struct{}{
		"named": {}, "called": {}, "with": {}, "and": {}, "email": {}, "phone": {}, "number": {},
		"details": {}, "info": {}, "new": {}, "to": {}, "id": {}, "list": {}, "the": {}, "a": {},
		"עם": {}, "בשם": {}, "מספר": {}, "חדש": {}, "חדשה": {}, "פרטי": {}, "טלפון": {}, "מייל": {},
	}
)

// capture returns the first non-empty group of the first match of re.
func capture(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if v := strings.Trim(strings.TrimSpace(g), `"'“”`); v != "" {
			return v, true
		}
	}
	return "", false
}

func textStep(key string, res []*regexp.Regexp, reject *regexp.Regexp) step {
	return func(_ *Extractor, in *input, out intent.Params) {
		if _, ok := out[key]; ok {
			return
		}
		for _, re := range res {
			if v, ok := capture(re, in.raw); ok && (reject == nil || !reject.MatchString(v)) {
				set(out, key, intent.String(v))
				return
			}
		}
	}
}

// leadName is the bare-sentence fallback: strip the command from the first
// line and take what is left, up to the first stop word, if short enough.
// When the first line is only the command, the next line is used.
func leadName(key string, command *regexp.Regexp) step {
	return func(_ *Extractor, in *input, out intent.Params) {
		if _, ok := out[key]; ok {
			return
		}
		lines := strings.Split(in.raw, "\n")
		loc := command.FindStringIndex(lines[0])
		if loc == nil {
			return
		}
		candidate := strings.TrimSpace(lines[0][loc[1]:])
		if candidate == "" && len(lines) > 1 && !strings.ContainsAny(lines[1], ":=") {
			candidate = strings.TrimSpace(lines[1])
		}
		if stop := nameStopRe.FindStringIndex(candidate); stop != nil {
			candidate = strings.TrimSpace(candidate[:stop[0]])
		}
		candidate = strings.Trim(candidate, `"'“”`)
		if candidate == "" || textnorm.RuneLen(candidate) > maxLeadNameLength {
			return
		}
		if c := candidate[0]; c == '#' || (c >= '0' && c <= '9') {
			return
		}
		set(out, key, intent.String(candidate))
	}
}

// categoriesStep returns the category list of a product.
func categoriesStep(_ *Extractor, in *input, out intent.Params) {
	if _, ok := out["categories"]; ok {
		return
	}
	for _, re := range categoriesRes {
		v, ok := capture(re, in.raw)
		if !ok {
			continue
		}
		var items []string
		for _, part := range listSplitRe.Split(v, -1) {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		if len(items) > 0 {
			set(out, "categories", intent.List(items...))
			return
		}
	}
}

func emailStep(_ *Extractor, in *input, out intent.Params) {
	if m := emailRe.FindString(in.raw); m != "" {
		set(out, "email", intent.String(m))
	}
}

func phoneStep(_ *Extractor, in *input, out intent.Params) {
	if m := phoneRe.FindString(in.raw); m != "" {
		set(out, "phone", intent.String(strings.TrimSpace(m)))
	}
}

// customerNameStep fills first_name and last_name from labeled fields or
// "named X Y" style phrasing.
func customerNameStep(_ *Extractor, in *input, out intent.Params) {
	if v, ok := capture(firstNameRe, in.raw); ok {
		set(out, "first_name", intent.String(v))
	}
	if v, ok := capture(lastNameRe, in.raw); ok {
		set(out, "last_name", intent.String(v))
	}
	_, hasFirst := out["first_name"]
	_, hasLast := out["last_name"]
	if hasFirst || hasLast {
		return
	}

	for _, re := range fullNameRes {
		m := re.FindStringSubmatch(in.raw)
		if m == nil || isNameStop(m[1]) {
			continue
		}
		set(out, "first_name", intent.String(m[1]))
		if len(m) > 2 && m[2] != "" && !isNameStop(m[2]) {
			set(out, "last_name", intent.String(m[2]))
		}
		return
	}
}

func isNameStop(w string) bool {
	_, ok := nameStopWords[strings.ToLower(w)]
	return ok
}

var (
	productNameStep  = textStep("name", productNameRes, nil)
	descriptionStep  = textStep("description", descriptionRes, descriptionRejectRe)
	skuStep          = textStep("sku", skuRes, nil)
	queryStep        = textStep("query", queryRes, nil)
	reasonStep       = textStep("reason", reasonRes, nil)
	categoryNameStep = textStep("category_name", categoryNameRes, nil)

	productLeadName  = leadName("name", productCommandRe)
	stockLeadName    = leadName("name", stockCommandRe)
	categoryLeadName = leadName("category_name", categoryCommandRe)
)
