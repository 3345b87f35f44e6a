package parsing

import (
	"sort"
	"unicode/utf8"

	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

// lineIndex converts byte offsets in a source text into positions.
type lineIndex struct {
	source string
	starts []int // byte offset of the first byte of each line
}

func newLineIndex(source string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{source: source, starts: starts}
}

// position returns the row (1-based) and column (0-based, in runes) of offset.
func (idx *lineIndex) position(offset int) token.Position {
	line := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > offset }) - 1
	col := utf8.RuneCountInString(idx.source[idx.starts[line]:offset])
	return token.Position{Row: line + 1, Col: col}
}

func (idx *lineIndex) location(start, end int) token.Location {
	return token.Location{Start: idx.position(start), End: idx.position(end)}
}
