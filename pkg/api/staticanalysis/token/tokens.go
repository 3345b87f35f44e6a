package token

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// String records a string literal occurring in the source code.
// Value holds the literal after escape sequences have been decoded,
// Raw holds the literal exactly as written, quotes included.
type String struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// LevenshteinDist computes the Levenshtein distance between the parsed and raw versions of
// this string literal. A character substitution is treated as deletion and insertion (2 operations).
func (s String) LevenshteinDist() int {
	return levenshtein.DistanceForStrings([]rune(s.Raw), []rune(s.Value), levenshtein.DefaultOptions)
}
