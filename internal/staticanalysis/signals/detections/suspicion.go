package detections

import (
	"strings"
	"unicode/utf8"
)

const (
	// strings shorter than this are never suspicious
	maxSafeStringLen = 45

	// strings longer than this are checked for character diversity
	maxSafeStringCharDiversity = 70
)

// CharDiversity returns the number of distinct runes in s, ignoring
// the runes listed in exclude.
func CharDiversity(s string, exclude ...rune) int {
	seen := map[rune]struct{}{}
	for _, r := range s {
		seen[r] = struct{}{}
	}
	for _, r := range exclude {
		delete(seen, r)
	}
	return len(seen)
}

/*
SuspicionScore rates how likely a string literal is to be packed or encoded
data rather than text, from 0 (not suspicious) to 3.

Strings shorter than 45 runes score 0. Longer strings score 1 unless a space
appears in their first 45 runes, and a further 2 if they are longer than 70
runes and use at least 70 distinct characters (newlines excluded).
*/
func SuspicionScore(s string) int {
	length := utf8.RuneCountInString(s)
	if length < maxSafeStringLen {
		return 0
	}

	score := 1
	if head := []rune(s)[:maxSafeStringLen]; strings.ContainsRune(string(head), ' ') {
		score = 0
	}
	if length > maxSafeStringCharDiversity && CharDiversity(s, '\n') >= maxSafeStringCharDiversity {
		score += 2
	}
	return score
}
