// Package ranking computes relevance scores for products against free-text
// queries. Scoring is a pure function of (product, query, synonym table):
// no state is kept between calls, so its components may be shared freely by
// concurrent searches.
package ranking

import "strings"

// Normalize lowercases and trims text for matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize splits text into normalized, non-empty whitespace-separated
// terms. No stemming or diacritic folding is attempted.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}

// ContainsNormalized reports whether the normalized text contains the
// normalized term as a substring. Containment is deliberately substring
// based, not token based: "mug" matches "mugs" and also "mugshot".
func ContainsNormalized(text, term string) bool {
	t := Normalize(term)
	if t == "" {
		return false
	}
	return strings.Contains(Normalize(text), t)
}
