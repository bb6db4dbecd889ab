package heuristic

import (
	"regexp"
	"strings"
)

// termPattern matches alphabetic runs of at least four letters.
var termPattern = regexp.MustCompile(`\b[A-Za-z]{4,}\b`)

// stopWords holds common English words that never qualify as key terms.
// Comparison is against the lowercase form of a candidate.
var stopWords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "have": {}, "will": {},
	"been": {}, "were": {}, "said": {}, "each": {}, "which": {},
	"their": {}, "time": {}, "many": {}, "some": {}, "more": {},
	"very": {}, "what": {}, "know": {}, "just": {}, "first": {},
	"into": {}, "over": {}, "think": {}, "also": {}, "your": {},
	"work": {}, "life": {}, "only": {}, "can": {}, "still": {},
	"should": {}, "after": {}, "being": {}, "now": {}, "made": {},
	"before": {}, "here": {}, "through": {}, "when": {}, "where": {},
	"much": {}, "same": {}, "right": {}, "used": {}, "take": {},
	"three": {}, "want": {}, "does": {}, "get": {},
}

// KeyTerm picks the first alphabetic run of length four or more in the
// content unit whose lowercase form is not a stop word. The boolean
// result reports whether a term was found; the term is never returned
// as an empty string with ok=true.
func KeyTerm(unit string) (string, bool) {
	for _, word := range termPattern.FindAllString(unit, -1) {
		if _, stop := stopWords[strings.ToLower(word)]; stop {
			continue
		}
		return word, true
	}
	return "", false
}
