package probes

import (
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ossf/sourcerisk/internal/staticanalysis/parsing"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis"
)

// shadyTLDs are top-level domains commonly used for disposable or malicious hosting.
var shadyTLDs = []string{
	"link", "xyz", "tk", "ml", "ga", "cf", "gq", "pw", "top", "club", "mw", "bd",
	"ke", "am", "sbs", "date", "quest", "cd", "bid", "ws", "icu", "cam", "uno",
	"email", "stream",
}

// shadyLinkRegexp matches a string ending in an http(s) url on one of shadyTLDs.
// Matching is case-sensitive.
var shadyLinkRegexp = regexp.MustCompile(`https?://.*\.(?:` + strings.Join(shadyTLDs, "|") + `)$`)

// minHexLiteralLen is the shortest string treated as hex-encoded text.
const minHexLiteralLen = 4

// ShadyTLDs returns the top-level domains flagged by the isLiteral probe.
func ShadyTLDs() []string {
	return append([]string(nil), shadyTLDs...)
}

// IsShadyLink reports whether s ends with a url on a low-trust top-level domain.
func IsShadyLink(s string) bool {
	return shadyLinkRegexp.MatchString(s)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsHexLiteral reports whether s is made only of hexadecimal digits and is
// at least 4 characters long.
func IsHexLiteral(s string) bool {
	if len(s) < minHexLiteralLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// DecodeHex decodes s pairwise into text. A trailing odd digit is dropped and
// each byte that is not part of a valid UTF-8 sequence becomes one U+FFFD, so
// "ffff" decodes to two replacement characters. s must satisfy IsHexLiteral.
func DecodeHex(s string) string {
	b, err := hex.DecodeString(s[:len(s)&^1])
	if err != nil {
		return ""
	}
	raw := string(b)
	if utf8.ValidString(raw) {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		// an invalid byte decodes to (RuneError, 1)
		sb.WriteRune(r)
		i += size
	}
	return sb.String()
}

// IsLiteral inspects string literals for hex-encoded text, hidden built-in
// module names and links to low-trust domains. Literals that match none of
// these are handed to the generic literal analysis.
type IsLiteral struct{}

func (IsLiteral) Name() string { return "isLiteral" }

func (IsLiteral) BreakOnMatch() bool { return false }

// ValidateNode accepts literal nodes whose value is a string.
func (IsLiteral) ValidateNode(node parsing.Node) []bool {
	lit, ok := node.(*parsing.LiteralNode)
	if !ok {
		return []bool{false}
	}
	_, isString := lit.StringValue()
	return []bool{isString}
}

func (IsLiteral) Main(node parsing.Node, opts Options) {
	lit, ok := node.(*parsing.LiteralNode)
	if !ok {
		return
	}
	value, ok := lit.StringValue()
	if !ok {
		return
	}

	analysis := opts.Analysis
	loc := lit.Location()

	switch {
	case IsHexLiteral(value):
		decoded := DecodeHex(value)
		analysis.AnalyzeString(decoded)

		if IsBuiltinModule(decoded) {
			analysis.Dependencies().Add(decoded, loc)
			analysis.AddWarning(staticanalysis.UnsafeImport, nil, loc)
		} else if decoded == "require" || !opts.hexOracle().IsSafe(value) {
			analysis.AddWarning(staticanalysis.EncodedLiteral, &value, loc)
		}
	case IsShadyLink(value):
		analysis.AddWarning(staticanalysis.ShadyLink, &value, loc)
	default:
		analysis.AnalyzeLiteral(lit)
	}
}
