package detections

import (
	"regexp"
	"strings"
)

var (
	// RFC4648 standard and url-safe alphabets, padding optional, min length 16.
	base64Regex = regexp.MustCompile("[[:alnum:]+/]{16,}(?:={0,2})?|[[:alnum:]_-]{16,}(?:={0,2})?")

	// a candidate needs an upper case letter, a lower case letter and a
	// letter outside of the hex alphabet, otherwise it is most likely
	// a word, a number or a hex string
	base64Filters = []*regexp.Regexp{
		regexp.MustCompile("[[:upper:]]"),
		regexp.MustCompile("[[:lower:]]"),
		regexp.MustCompile("[G-Zg-z]"),
	}
)

func looksLikeBase64(candidate string) bool {
	if strings.ContainsRune(candidate, '=') && len(candidate)%4 != 0 {
		return false
	}
	for _, r := range base64Filters {
		if !r.MatchString(candidate) {
			return false
		}
	}
	return true
}

// FindBase64Substrings returns the non-overlapping substrings of s that
// look like base64 encoded data. The data is not decoded.
func FindBase64Substrings(s string) []string {
	var matches []string
	for _, candidate := range base64Regex.FindAllString(s, -1) {
		if looksLikeBase64(candidate) {
			matches = append(matches, candidate)
		}
	}
	return matches
}
