package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for comparison: it lowercases, decomposes accented
// characters, strips combining marks and trims surrounding whitespace.
// "Informática" and "informatica" normalize to the same string.
func Normalize(s string) string {
	// Chained transformers carry state, so one is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		// Only reachable on malformed UTF-8; fall back to a lowercase match.
		out = strings.ToLower(s)
	}
	return strings.TrimSpace(out)
}
