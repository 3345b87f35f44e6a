package token

import "fmt"

// Position is a point in source code. Row is 1-based and Col is 0-based,
// following the ESTree convention for node locations.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Row, pos.Col)
}

// Before reports whether pos comes strictly before other.
func (pos Position) Before(other Position) bool {
	return pos.Row < other.Row || (pos.Row == other.Row && pos.Col < other.Col)
}

// Location is the source range covered by a node. End is exclusive.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (loc Location) String() string {
	return fmt.Sprintf("[%v-%v]", loc.Start, loc.End)
}
