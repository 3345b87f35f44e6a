package parsing

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var singleCharEscapes = map[byte]string{
	'n': "\n", 'r': "\r", 't': "\t", 'b': "\b", 'f': "\f", 'v': "\v",
}

func isOctal(c byte) bool { return '0' <= c && c <= '7' }

// parseHexRun parses the n hex digits of s starting at i.
func parseHexRun(s string, i, n int) (rune, bool) {
	if i+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[i:i+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// decodeUnicodeEscape decodes a "\u" escape whose 'u' is at s[i]. It returns
// the decoded rune and the number of bytes consumed after the backslash.
func decodeUnicodeEscape(s string, i int) (rune, int, bool) {
	if i+1 < len(s) && s[i+1] == '{' {
		end := strings.IndexByte(s[i+2:], '}')
		if end <= 0 {
			return 0, 0, false
		}
		r, ok := parseHexRun(s, i+2, end)
		if !ok || r > utf8.MaxRune {
			return 0, 0, false
		}
		return r, end + 3, true
	}
	r, ok := parseHexRun(s, i+1, 4)
	if !ok {
		return 0, 0, false
	}
	// combine a surrogate pair written as two consecutive escapes
	if utf16.IsSurrogate(r) && strings.HasPrefix(s[i+5:], `\u`) {
		if low, ok := parseHexRun(s, i+7, 4); ok {
			if combined := utf16.DecodeRune(r, low); combined != utf8.RuneError {
				return combined, 11, true
			}
		}
	}
	return r, 5, true
}

/*
decodeEscapes returns the value of the body of a JavaScript string literal
(the text between the quotes). Malformed escape sequences are kept as written,
so decoding never fails.

Supported: single character escapes (\n, \t, ...), \xHH, \uHHHH, \u{H...},
legacy octal escapes and line continuations. Any other escaped character
stands for itself.
*/
func decodeEscapes(body string) string {
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}

		next := body[i+1]
		switch {
		case singleCharEscapes[next] != "":
			sb.WriteString(singleCharEscapes[next])
			i++
		case next == 'x':
			if r, ok := parseHexRun(body, i+2, 2); ok {
				sb.WriteRune(r)
				i += 3
			} else {
				sb.WriteByte(c)
			}
		case next == 'u':
			if r, n, ok := decodeUnicodeEscape(body, i+1); ok {
				sb.WriteRune(r)
				i += n
			} else {
				sb.WriteByte(c)
			}
		case isOctal(next):
			j := i + 1
			for j < len(body) && j < i+4 && isOctal(body[j]) {
				j++
			}
			v, _ := strconv.ParseUint(body[i+1:j], 8, 32)
			if v > 0xff {
				// "\400" is "\40" followed by "0"
				j--
				v >>= 3
			}
			sb.WriteRune(rune(v))
			i = j - 1
		case next == '\r':
			i++
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case next == '\n':
			i++
		default:
			sb.WriteByte(next)
			i++
		}
	}
	return sb.String()
}
