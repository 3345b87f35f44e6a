package detections

import (
	"regexp"
	"unicode/utf8"

	"github.com/ossf/sourcerisk/internal/utils"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

/*
Escape sequences are defined by the regexes below. Octal, hex and 16-bit
unicode escapes are shared by most languages; the braced code point form
is specific to JavaScript (and PHP, Ruby).
*/
var (
	octalEscape     = regexp.MustCompile(`\\[0-7]{1,3}`)        // e.g "\077", "\251"
	hexEscape       = regexp.MustCompile(`\\x[[:xdigit:]]{2}`)  // e.g. "\x2a", "\x3f"
	unicodeEscape   = regexp.MustCompile(`\\u[[:xdigit:]]{4}`)  // e.g. "\u00af", "\u83bd"
	codePointEscape = regexp.MustCompile(`\\u\{[[:xdigit:]]+}`) // e.g. "\u{1ECC2}", "\u{001FFF}"

	escapeSequences = utils.CombineRegexp(octalEscape, hexEscape, unicodeEscape, codePointEscape)
)

// CountEscapes returns the number of escape sequences in the raw text of a literal.
func CountEscapes(raw string) int {
	return len(escapeSequences.FindAllStringIndex(raw, -1))
}

/*
IsHighlyEscaped returns true if a string literal exceeds the given
threshold count or frequency (in range [0, 1]) of escape sequences.
Frequency is measured against the number of code points in the decoded value.
*/
func IsHighlyEscaped(s token.String, thresholdCount int, thresholdFrequency float64) bool {
	escapeCount := CountEscapes(s.Raw)
	if escapeCount == 0 {
		return false
	}
	length := utf8.RuneCountInString(s.Value)
	if length == 0 {
		return escapeCount >= thresholdCount
	}
	return escapeCount >= thresholdCount || float64(escapeCount)/float64(length) >= thresholdFrequency
}
