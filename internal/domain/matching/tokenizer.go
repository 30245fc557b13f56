// Package matching contains the compatibility scoring engine, the candidate
// selector, and the match-request and mentorship lifecycle.
package matching

import (
	"strings"
	"unicode"
)

// Normalize lower-cases free text for comparison. Empty in, empty out.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Tokenize splits normalized text into a set of word tokens. Runs of
// non-letter, non-digit characters are separators; empty tokens are
// discarded. Used by the token overlap scorer.
func Tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	fields := strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// normalizeTags lower-cases a tag list into a set. Nil is an empty set.
func normalizeTags(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(Normalize(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}
