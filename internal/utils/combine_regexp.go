package utils

import (
	"regexp"
	"strings"
)

func combine(open string, regexps []*regexp.Regexp) *regexp.Regexp {
	patterns := Transform(regexps, func(r *regexp.Regexp) string {
		return open + r.String() + ")"
	})
	return regexp.MustCompile(strings.Join(patterns, "|"))
}

// CombineRegexp creates a single regexp by joining the argument regexps together
// using the | operator. Each regexp is put into a separate non-capturing group before
// being combined.
func CombineRegexp(regexps ...*regexp.Regexp) *regexp.Regexp {
	return combine("(?:", regexps)
}

// CombineRegexpCapturing is like CombineRegexp but puts each regexp in a
// capture group. Group k+1 of a match is set iff regexps[k] matched, provided
// the argument regexps have no capture groups of their own.
func CombineRegexpCapturing(regexps ...*regexp.Regexp) *regexp.Regexp {
	return combine("(", regexps)
}
