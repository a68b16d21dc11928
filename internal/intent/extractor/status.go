package extractor

import (
	"regexp"
	"strings"

	"intent-engine/internal/intent"
	"intent-engine/pkg/textnorm"
)

type synonym struct {
	phrase    string
	canonical string
}

// orderStatuses maps bilingual wording to WooCommerce order statuses.
// Order matters for the free scan: longer phrases first.
var orderStatuses = []synonym{
	{"on hold", "on-hold"},
	{"in progress", "processing"},
	{"pending payment", "pending"},
	{"pending", "pending"},
	{"waiting", "pending"},
	{"ממתין לתשלום", "pending"},
	{"ממתין", "pending"},
	{"ממתינה", "pending"},
	{"בהמתנה", "pending"},
	{"processing", "processing"},
	{"בטיפול", "processing"},
	{"בעיבוד", "processing"},
	{"onhold", "on-hold"},
	{"מושהה", "on-hold"},
	{"מושהית", "on-hold"},
	{"בהשהיה", "on-hold"},
	{"completed", "completed"},
	{"complete", "completed"},
	{"done", "completed"},
	{"delivered", "completed"},
	{"הושלם", "completed"},
	{"הושלמה", "completed"},
	{"בוצע", "completed"},
	{"בוצעה", "completed"},
	{"נמסר", "completed"},
	{"נמסרה", "completed"},
	{"cancelled", "cancelled"},
	{"canceled", "cancelled"},
	{"מבוטל", "cancelled"},
	{"מבוטלת", "cancelled"},
	{"בוטל", "cancelled"},
	{"בוטלה", "cancelled"},
	{"refunded", "refunded"},
	{"הוחזר", "refunded"},
	{"הוחזרה", "refunded"},
	{"זוכה", "refunded"},
	{"failed", "failed"},
	{"נכשל", "failed"},
	{"נכשלה", "failed"},
}

var productStatuses = []synonym{
	{"published", "publish"},
	{"publish", "publish"},
	{"active", "publish"},
	{"live", "publish"},
	{"פורסם", "publish"},
	{"מפורסם", "publish"},
	{"פעיל", "publish"},
	{"draft", "draft"},
	{"טיוטה", "draft"},
	{"private", "private"},
	{"hidden", "private"},
	{"פרטי", "private"},
	{"מוסתר", "private"},
	{"pending review", "pending"},
}

var (
	statusLabelRe = regexp.MustCompile(`\bstatus\s*(?:to|=|:|-|is)?\s*["']?([\p{L}-]+(?:\s+hold)?)`)
	statusToRe    = regexp.MustCompile(`\b(?:to|as)\s+["']?([\p{L}-]+(?:\s+hold)?)`)
	statusHeRe    = regexp.MustCompile(`(?:לסטטוס|סטטוס|למצב)\s*[:-]?\s*(\p{Hebrew}+)`)
)

// hebrewPrefixes are one-letter prepositions glued to the next word.
var hebrewPrefixes = []string{"ל", "ה", "כ", "ב"}

func lookup(table []synonym, phrase string) (string, bool) {
	w := textnorm.Words(phrase)
	for _, s := range table {
		if textnorm.Words(s.phrase) == w {
			return s.canonical, true
		}
	}
	for _, p := range hebrewPrefixes {
		if rest, ok := strings.CutPrefix(w, p); ok && rest != "" {
			return lookup(table, rest)
		}
	}
	return "", false
}

func scan(table []synonym, text string) (string, bool) {
	for _, s := range table {
		if textnorm.ContainsWords(text, s.phrase) {
			return s.canonical, true
		}
	}
	return "", false
}

// statusStep resolves a status. Explicit captures ("status to X", "as X")
// are mapped through table and passed through literally when unmapped; a
// free scan for known wording is the last resort. Without explicit, only
// "status X" and the scan are tried.
func statusStep(table []synonym, explicit bool) step {
	patterns := []*regexp.Regexp{statusLabelRe, statusHeRe}
	if explicit {
		patterns = []*regexp.Regexp{statusLabelRe, statusToRe, statusHeRe}
	}
	return func(_ *Extractor, in *input, out intent.Params) {
		if _, ok := out["status"]; ok {
			return
		}
		for _, re := range patterns {
			m := re.FindSubmatch(in.rest)
			if m == nil {
				continue
			}
			captured := strings.TrimSpace(string(m[1]))
			if canon, ok := lookup(table, captured); ok {
				set(out, "status", intent.String(canon))
				return
			}
			if explicit {
				set(out, "status", intent.String(captured))
				return
			}
		}
		if canon, ok := scan(table, string(in.rest)); ok {
			set(out, "status", intent.String(canon))
		}
	}
}
