package parsing

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ossf/sourcerisk/internal/utils"
)

// General reference for matching string literals
// https://blog.stevenlevithan.com/archives/match-quoted-string
var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`/\*(?s:.*?)\*/`)
	doubleQuoted = regexp.MustCompile(`"(?:[^"\\\n]|\\(?s:.))*"`)
	singleQuoted = regexp.MustCompile(`'(?:[^'\\\n]|\\(?s:.))*'`)
	// only the opening back-tick, templates are scanned by hand so that
	// nested templates and substitutions are handled
	backTick = regexp.MustCompile("`")
	numeric  = regexp.MustCompile(`\b(?:0[xX][[:xdigit:]]+|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)\b`)
	// a regular expression literal, or a division operator followed by
	// text that looks like one; see regexpAllowed
	regexpLiteral = regexp.MustCompile(`/(?:[^/\\\n\[]|\\.|\[(?:[^\]\\\n]|\\.)*\])+/[A-Za-z]*`)
)

// tokenKind is the index of the regexp that matched, see tokenRegexps.
type tokenKind int

const (
	kindLineComment tokenKind = iota
	kindBlockComment
	kindDoubleQuoted
	kindSingleQuoted
	kindTemplate
	kindNumeric
	kindRegexp
)

var tokenRegexps = []*regexp.Regexp{lineComment, blockComment, doubleQuoted, singleQuoted, backTick, numeric, regexpLiteral}

// sourceTokens matches, leftmost first, any of tokenRegexps. Submatch k+1 is
// set when tokenRegexps[k] matched.
var sourceTokens = utils.CombineRegexpCapturing(tokenRegexps...)

// keywords after which a slash starts a regular expression rather than a division.
var regexpKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "new": true, "delete": true, "void": true,
	"throw": true, "yield": true, "await": true, "instanceof": true,
}

func dequote(s string) string {
	if len(s) <= 2 {
		return ""
	}
	return s[1 : len(s)-1]
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

type scanner struct {
	src   string
	idx   *lineIndex
	nodes []Node
}

/*
FindNodes extracts literal nodes from JavaScript source code, in source order.

This is a lexical scan rather than a full parse: comments and regular
expression literals are skipped and quoted strings, template strings and
numeric literals are reported with their exact location. The expressions
inside template substitutions are scanned too, so their literals follow the
template that holds them.

A slash is taken to start a regular expression when it follows an operator,
an opening bracket or a keyword such as return, and a division otherwise.
*/
func FindNodes(source string) []Node {
	s := &scanner{src: source, idx: newLineIndex(source)}
	s.scan(0, len(source))
	return s.nodes
}

// scan collects the nodes in src[from:to].
func (s *scanner) scan(from, to int) {
	pos := from
	for pos < to {
		m := sourceTokens.FindStringSubmatchIndex(s.src[pos:to])
		if m == nil {
			return
		}
		kind := tokenKind(-1)
		for k := range tokenRegexps {
			if m[2*(k+1)] >= 0 {
				kind = tokenKind(k)
				break
			}
		}
		start, end := pos+m[0], pos+m[1]

		switch kind {
		case kindDoubleQuoted, kindSingleQuoted:
			raw := s.src[start:end]
			s.nodes = append(s.nodes, &LiteralNode{Value: decodeEscapes(dequote(raw)), Raw: raw, Loc: s.idx.location(start, end)})
		case kindTemplate:
			tmplEnd, subs, ok := s.template(start, to)
			if !ok {
				// unterminated
				end = start + 1
				break
			}
			end = tmplEnd
			raw := s.src[start:end]
			s.nodes = append(s.nodes, &TemplateLiteralNode{Value: decodeEscapes(dequote(raw)), Raw: raw, Loc: s.idx.location(start, end)})
			for _, sub := range subs {
				s.scan(sub[0], sub[1])
			}
		case kindNumeric:
			if start > 0 && isIdentByte(s.src[start-1]) {
				// tail of an identifier such as a1
				break
			}
			raw := s.src[start:end]
			if v, ok := parseNumber(raw); ok {
				s.nodes = append(s.nodes, &LiteralNode{Value: v, Raw: raw, Loc: s.idx.location(start, end)})
			}
		case kindRegexp:
			if !s.regexpAllowed(start) {
				end = start + 1
			}
		}
		pos = end
	}
}

// regexpAllowed reports whether a slash at offset i starts a regular
// expression literal, judging by the token before it.
func (s *scanner) regexpAllowed(i int) bool {
	j := i - 1
	for j >= 0 && isSpace(s.src[j]) {
		j--
	}
	if j < 0 {
		return true
	}
	c := s.src[j]
	if strings.IndexByte("(,=:[!&|?{};+-*%<>~^", c) >= 0 {
		return true
	}
	if !isIdentByte(c) {
		return false
	}
	k := j
	for k >= 0 && isIdentByte(s.src[k]) {
		k--
	}
	return regexpKeywords[s.src[k+1:j+1]]
}

// template scans the template literal whose opening back-tick is at start. It
// returns the offset just past the closing back-tick and the ranges of the
// substitution bodies, excluding "${" and "}".
func (s *scanner) template(start, to int) (int, [][2]int, bool) {
	var subs [][2]int
	i := start + 1
	for i < to {
		switch {
		case s.src[i] == '\\':
			i += 2
		case s.src[i] == '`':
			return i + 1, subs, true
		case s.src[i] == '$' && i+1 < to && s.src[i+1] == '{':
			bodyEnd, ok := s.skipExpression(i+2, to)
			if !ok {
				return 0, nil, false
			}
			subs = append(subs, [2]int{i + 2, bodyEnd})
			i = bodyEnd + 1
		default:
			i++
		}
	}
	return 0, nil, false
}

// skipExpression returns the offset of the "}" closing a substitution whose
// body starts at i.
func (s *scanner) skipExpression(i, to int) (int, bool) {
	depth := 0
	for i < to {
		switch c := s.src[i]; c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i, true
			}
			depth--
		case '"', '\'':
			i = s.skipQuoted(i, to)
			continue
		case '`':
			end, _, ok := s.template(i, to)
			if !ok {
				return 0, false
			}
			i = end
			continue
		case '/':
			if i+1 < to && s.src[i+1] == '/' {
				if nl := strings.IndexByte(s.src[i:to], '\n'); nl >= 0 {
					i += nl
					continue
				}
				return 0, false
			}
			if i+1 < to && s.src[i+1] == '*' {
				if e := strings.Index(s.src[i+2:to], "*/"); e >= 0 {
					i += e + 4
					continue
				}
				return 0, false
			}
		}
		i++
	}
	return 0, false
}

// skipQuoted returns the offset just past the string opened by the quote at i.
func (s *scanner) skipQuoted(i, to int) int {
	q := s.src[i]
	for i++; i < to; i++ {
		switch s.src[i] {
		case '\\':
			i++
		case q:
			return i + 1
		case '\n':
			return i
		}
	}
	return to
}

func parseNumber(raw string) (float64, bool) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		v, err := strconv.ParseUint(raw[2:], 16, 64)
		return float64(v), err == nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}

// FindStringLiterals returns only the string-valued literal nodes of source.
func FindStringLiterals(source string) []*LiteralNode {
	var literals []*LiteralNode
	for _, n := range FindNodes(source) {
		if l, ok := n.(*LiteralNode); ok {
			if _, isString := l.StringValue(); isString {
				literals = append(literals, l)
			}
		}
	}
	return literals
}

// FindNodesInFile reads filePath and returns its literal nodes.
func FindNodesInFile(filePath string) ([]Node, error) {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return FindNodes(string(fileBytes)), nil
}
