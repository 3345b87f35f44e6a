package probes

import (
	"github.com/ossf/sourcerisk/internal/staticanalysis/parsing"
	"github.com/ossf/sourcerisk/internal/utils"
)

// Runner applies an ordered list of probes to nodes.
type Runner struct {
	probes []Probe
}

func NewRunner(probes ...Probe) *Runner {
	return &Runner{probes: probes}
}

// Default returns a Runner with every built-in probe registered.
func Default() *Runner {
	return NewRunner(IsLiteral{})
}

// Register appends p to the probes run by r.
func (r *Runner) Register(p Probe) {
	r.probes = append(r.probes, p)
}

// Names returns the names of the registered probes, in run order.
func (r *Runner) Names() []string {
	return utils.Transform(r.probes, Probe.Name)
}

func accepted(results []bool) bool {
	if len(results) == 0 {
		return false
	}
	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}

// Run calls Main on node for each probe that accepts it, and returns the names
// of those probes. Probes after the first accepting probe whose BreakOnMatch
// is true are skipped.
func (r *Runner) Run(node parsing.Node, opts Options) []string {
	var matched []string
	for _, p := range r.probes {
		if !accepted(p.ValidateNode(node)) {
			continue
		}
		p.Main(node, opts)
		matched = append(matched, p.Name())
		if p.BreakOnMatch() {
			break
		}
	}
	return matched
}
