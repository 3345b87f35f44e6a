package detections

import (
	"encoding/hex"
	"regexp"
	"strings"
)

var hexRegex = regexp.MustCompile("[[:xdigit:]]{8,}")

/*
FindHexSubstrings returns all non-overlapping substrings of s
made up of at least 8 consecutive hexadecimal digits.
The leading 0x is not counted.
*/
func FindHexSubstrings(s string) []string {
	return hexRegex.FindAllString(s, -1)
}

// safeHexValues are alphabets and counters that show up in legitimate code
// (base conversion tables, test fixtures) and are not worth flagging.
var safeHexValues = []string{
	"0123456789",
	"123456789",
	"abcdef",
	"abc123456789",
	"0123456789abcdef",
	"abcdef0123456789abcdef",
}

// unsafeHexValues holds the hex encoding of words that are only ever
// hidden for bad reasons. A value containing one of them is never safe.
var unsafeHexValues = encodeAll("require", "child_process", "eval", "exec", "spawn", "process.env")

func encodeAll(words ...string) []string {
	encoded := make([]string, len(words))
	for i, w := range words {
		encoded[i] = hex.EncodeToString([]byte(w))
	}
	return encoded
}

func onlyRunesIn(s, alphabet string) bool {
	return s != "" && strings.Trim(s, alphabet) == ""
}

/*
IsSafeHex reports whether a string made of hexadecimal digits is unlikely to
be an encoded payload. The check is case-insensitive.

A value is unsafe if it contains the encoding of a known dangerous word.
Otherwise it is safe if it is made only of decimal digits (a number), only of
the letters a-f (a word such as "deadbeef"), or contains a well-known hex alphabet.
Every other value is treated as unsafe.
*/
func IsSafeHex(value string) bool {
	v := strings.ToLower(value)
	for _, unsafe := range unsafeHexValues {
		if strings.Contains(v, unsafe) {
			return false
		}
	}
	if onlyRunesIn(v, "0123456789") || onlyRunesIn(v, "abcdef") {
		return true
	}
	for _, safe := range safeHexValues {
		if strings.Contains(v, safe) {
			return true
		}
	}
	return false
}
