package quote

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shareable-length bounds on the normalized rune count. CJK and Latin
// characters count uniformly.
const (
	minShareLen = 4
	maxShareLen = 20
)

// fillerRunes are CJK onomatopoeia characters. A line whose collapsed
// content is made entirely of these is pure filler.
var fillerRunes = map[rune]struct{}{
	'啊': {}, '哦': {}, '嗯': {}, '啦': {}, '嘿': {}, '哈': {}, '呵': {},
	'嘻': {}, '呀': {}, '哟': {}, '耶': {}, '噜': {}, '嘟': {}, '呜': {},
	'唔': {}, '咿': {},
}

// fillerWords are romanized filler syllables; a line where every token is
// one of these is pure filler ("la la la", "oh oh yeah").
var fillerWords = map[string]struct{}{
	"la": {}, "na": {}, "da": {}, "ba": {}, "ah": {}, "oh": {}, "ooh": {},
	"wo": {}, "woah": {}, "yeah": {}, "hey": {}, "uh": {},
	"mmm": {}, "hmm": {}, "sha": {}, "du": {},
}

// Filter applies the per-song shareability rules. It is stateful on
// purpose: adjacent near-duplicate suppression compares against the
// previous seen line, so a fresh Filter is needed for every song.
type Filter struct {
	prev string
}

func NewFilter() *Filter { return &Filter{} }

// Admit reports whether the line is fit for sharing. Every examined line,
// admitted or not, becomes the "previous seen" line for the duplicate rule.
func (f *Filter) Admit(text string) bool {
	norm := normalize(text)
	prev := f.prev
	f.prev = norm

	n := utf8.RuneCountInString(norm)
	if n < minShareLen || n > maxShareLen {
		return false
	}
	if isFiller(text) {
		return false
	}
	if norm == prev {
		return false
	}
	return true
}

// Shareable checks a single line without duplicate history.
func Shareable(text string) bool {
	return NewFilter().Admit(text)
}

// normalize lowers the text and drops everything that is not a letter or a
// digit, so punctuation and whitespace never influence length or equality.
func normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// collapseRuns folds consecutive duplicate runes into one.
func collapseRuns(s string) string {
	var b strings.Builder
	var prev rune
	first := true
	for _, r := range s {
		if !first && r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
		first = false
	}
	return b.String()
}

// isFiller detects onomatopoeia runs: content that collapses to fewer than
// two distinct-run characters, or reduces entirely to filler syllables.
func isFiller(text string) bool {
	norm := normalize(text)
	if norm == "" {
		return true
	}
	collapsed := collapseRuns(norm)
	if utf8.RuneCountInString(collapsed) < 2 {
		return true
	}

	allRunes := true
	for _, r := range collapsed {
		if _, ok := fillerRunes[r]; !ok {
			allRunes = false
			break
		}
	}
	if allRunes {
		return true
	}

	fields := tokenize(text)
	if len(fields) == 0 {
		return false
	}
	for _, w := range fields {
		if _, ok := fillerWords[strings.ToLower(w)]; !ok {
			return false
		}
	}
	return true
}

// tokenize splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
