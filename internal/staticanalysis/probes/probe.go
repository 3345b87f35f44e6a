// Package probes holds the checks that are run against each syntax node
// found while scanning a source file.
//
// A probe is stateless. It reports what it finds through the Context passed in
// Options, which is owned by the caller and outlives the probe invocation.
package probes

import (
	"github.com/ossf/sourcerisk/internal/staticanalysis/parsing"
	"github.com/ossf/sourcerisk/internal/staticanalysis/signals/detections"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

// Context is the analysis state of a single scanned file.
type Context interface {
	// AnalyzeString inspects text that was recovered from the source, such as
	// a decoded literal.
	AnalyzeString(text string)

	// AnalyzeLiteral runs the generic string literal checks on node.
	AnalyzeLiteral(node *parsing.LiteralNode)

	Dependencies() DependencyRegistry

	// AddWarning records a finding. value may be nil.
	AddWarning(kind staticanalysis.WarningKind, value *string, loc token.Location)
}

// DependencyRegistry collects the modules referenced by a file.
type DependencyRegistry interface {
	Add(name string, loc token.Location)
}

// HexOracle decides whether a hexadecimal string is harmless.
type HexOracle interface {
	IsSafe(hex string) bool
}

// HexOracleFunc adapts a function to the HexOracle interface.
type HexOracleFunc func(hex string) bool

func (f HexOracleFunc) IsSafe(hex string) bool { return f(hex) }

// DefaultHexOracle is used when Options.Hex is nil.
var DefaultHexOracle HexOracle = HexOracleFunc(detections.IsSafeHex)

// Options is passed to Probe.Main.
type Options struct {
	Analysis Context
	Hex      HexOracle
}

func (o Options) hexOracle() HexOracle {
	if o.Hex == nil {
		return DefaultHexOracle
	}
	return o.Hex
}

// Probe is a check run on syntax nodes.
type Probe interface {
	// Name is a stable identifier for the probe.
	Name() string

	// ValidateNode reports whether the probe applies to node. The probe
	// applies only when every returned value is true.
	ValidateNode(node parsing.Node) []bool

	// Main runs the probe on a node accepted by ValidateNode.
	Main(node parsing.Node, opts Options)

	// BreakOnMatch reports whether no further probes should run on a node
	// once this probe has matched it.
	BreakOnMatch() bool
}
