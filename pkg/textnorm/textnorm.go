// Package textnorm normalizes bilingual (Hebrew/English) chat text before
// keyword matching.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the NFC form of s, lower-cased and trimmed, with runs of
// whitespace collapsed to a single space.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Lower applies NFC and lower-casing but keeps the original spacing. The
// keyword scorer relies on raw spacing for its word-boundary bonus.
func Lower(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// RuneLen counts characters rather than bytes so Hebrew and English words
// are measured on the same scale.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Words lower-cases s and joins its letter and digit runs with single
// spaces. Punctuation never glues two words together.
func Words(s string) string {
	return strings.Join(strings.FieldsFunc(Lower(s), isSeparator), " ")
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
}

// ContainsWords reports whether phrase occurs in s on word boundaries.
func ContainsWords(s, phrase string) bool {
	w := Words(phrase)
	if w == "" {
		return false
	}
	return strings.Contains(" "+Words(s)+" ", " "+w+" ")
}

// Tokenize splits s into lower-cased word tokens. Letters and digits form
// tokens; everything else separates them. Order of first appearance is kept
// and duplicates are dropped.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(Lower(s), isSeparator)

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// IsStopWord reports whether tok is a function word that carries no intent.
func IsStopWord(tok string) bool {
	_, ok := stopWords[tok]
	return ok
}

var stopWords = map[string]struct{}{
	// English
	"a": {}, "an": {}, "the": {}, "to": {}, "of": {}, "in": {}, "on": {}, "at": {},
	"for": {}, "and": {}, "or": {}, "is": {}, "are": {}, "be": {}, "it": {}, "this": {},
	"that": {}, "me": {}, "my": {}, "i": {}, "you": {}, "we": {}, "please": {}, "can": {},
	"want": {}, "would": {}, "like": {}, "with": {}, "from": {}, "all": {}, "some": {},
	// Hebrew
	"את": {}, "של": {}, "על": {}, "עם": {}, "זה": {}, "זאת": {}, "אני": {}, "אתה": {},
	"אנחנו": {}, "לי": {}, "מה": {}, "גם": {}, "או": {}, "אם": {}, "כל": {}, "בבקשה": {},
	"רוצה": {}, "תן": {}, "יש": {}, "אין": {}, "הוא": {}, "היא": {},
}
