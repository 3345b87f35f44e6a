package parsing

import (
	"fmt"

	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

// NodeType is the ESTree type of a syntax node.
type NodeType string

const (
	NodeLiteral         NodeType = "Literal"
	NodeTemplateLiteral NodeType = "TemplateLiteral"
)

// Node is a syntax node found in source code. Nodes are owned by the scanner
// that produced them and must not be modified by their consumers.
type Node interface {
	Type() NodeType
	Location() token.Location
}

// LiteralNode is a string or numeric literal. Value holds a string for string
// literals and a float64 for numeric literals, as a JavaScript runtime would.
type LiteralNode struct {
	Value any
	Raw   string
	Loc   token.Location
}

func (n *LiteralNode) Type() NodeType           { return NodeLiteral }
func (n *LiteralNode) Location() token.Location { return n.Loc }

// StringValue returns the value of the literal if it is a string.
func (n *LiteralNode) StringValue() (string, bool) {
	s, ok := n.Value.(string)
	return s, ok
}

// Token returns the literal as a token.String. It is only meaningful for
// string literals; other literals produce an empty Value.
func (n *LiteralNode) Token() token.String {
	s, _ := n.StringValue()
	return token.String{Value: s, Raw: n.Raw}
}

func (n *LiteralNode) String() string {
	return fmt.Sprintf("Literal %v (raw: %s) %v", n.Value, n.Raw, n.Loc)
}

// TemplateLiteralNode is a back-tick quoted template. Substitutions are
// kept verbatim in Value.
type TemplateLiteralNode struct {
	Value string
	Raw   string
	Loc   token.Location
}

func (n *TemplateLiteralNode) Type() NodeType           { return NodeTemplateLiteral }
func (n *TemplateLiteralNode) Location() token.Location { return n.Loc }
