package heuristic

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minUnitRunes is the minimum trimmed length, in characters, for a text
// fragment to qualify as a content unit.
const minUnitRunes = 16

// clausePattern splits a sentence into smaller clause-like fragments.
var clausePattern = regexp.MustCompile(`[;!?]`)

// Segment splits raw text into content units: trimmed fragments long
// enough to serve as card answers. Newlines are flattened to spaces,
// the text is split on periods, and each kept sentence is additionally
// split on semicolons, exclamation marks, and question marks.
//
// The combined candidates are deduplicated in first-seen order, so the
// result is deterministic for a given input. Text too short to yield
// any unit returns an empty slice; the caller handles that case.
func Segment(text string) []string {
	flat := strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	for _, s := range strings.Split(flat, ".") {
		if t := strings.TrimSpace(s); utf8.RuneCountInString(t) >= minUnitRunes {
			sentences = append(sentences, t)
		}
	}

	candidates := make([]string, 0, len(sentences)*2)
	candidates = append(candidates, sentences...)
	for _, sentence := range sentences {
		for _, part := range clausePattern.Split(sentence, -1) {
			if t := strings.TrimSpace(part); utf8.RuneCountInString(t) >= minUnitRunes {
				candidates = append(candidates, t)
			}
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	units := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		units = append(units, c)
	}

	return units
}
