// Package analysis holds the per-file state that probes report to.
package analysis

import (
	"sync"

	"github.com/ossf/sourcerisk/internal/featureflags"
	"github.com/ossf/sourcerisk/internal/staticanalysis/parsing"
	"github.com/ossf/sourcerisk/internal/staticanalysis/probes"
	"github.com/ossf/sourcerisk/internal/staticanalysis/signals/detections"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

const (
	// literals scoring at least this much raise a suspicious-literal warning
	suspiciousLiteralScore = 3

	// thresholds for detections.IsHighlyEscaped
	escapedCountThreshold     = 8
	escapedFrequencyThreshold = 0.25
)

// Context collects the warnings, dependencies and string signals of one file.
// All methods are safe for concurrent use; recorded data is append-only.
type Context struct {
	deps Dependencies

	mu            sync.Mutex
	warnings      []staticanalysis.Warning
	signals       staticanalysis.StringSignals
	literalScores []int
}

var _ probes.Context = (*Context)(nil)

func New() *Context {
	return &Context{}
}

func (c *Context) Dependencies() probes.DependencyRegistry {
	return &c.deps
}

func (c *Context) AddWarning(kind staticanalysis.WarningKind, value *string, loc token.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, staticanalysis.Warning{Kind: kind, Value: value, Location: loc})
}

func (c *Context) addScore(s string) int {
	score := detections.SuspicionScore(s)
	if score > 0 {
		c.mu.Lock()
		c.literalScores = append(c.literalScores, score)
		c.mu.Unlock()
	}
	return score
}

func (c *Context) collectSignals(s string) {
	hex := detections.FindHexSubstrings(s)
	b64 := detections.FindBase64Substrings(s)
	urls := detections.FindURLs(s)
	ips := detections.FindIPAddresses(s)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.signals.HexStrings = append(c.signals.HexStrings, hex...)
	c.signals.Base64Strings = append(c.signals.Base64Strings, b64...)
	c.signals.URLs = append(c.signals.URLs, urls...)
	c.signals.IPAddresses = append(c.signals.IPAddresses, ips...)
}

// AnalyzeString scores text recovered from the source, and collects its
// signals when featureflags.DecodedStringSignals is enabled.
func (c *Context) AnalyzeString(text string) {
	c.addScore(text)
	if featureflags.DecodedStringSignals.Enabled() {
		c.collectSignals(text)
	}
}

// AnalyzeLiteral scores a string literal, collects its signals and records it
// if it is heavily escaped. Long literals that look like packed data raise a
// suspicious-literal warning.
func (c *Context) AnalyzeLiteral(node *parsing.LiteralNode) {
	value, ok := node.StringValue()
	if !ok {
		return
	}

	if c.addScore(value) >= suspiciousLiteralScore && featureflags.SuspiciousLiteralWarnings.Enabled() {
		c.AddWarning(staticanalysis.SuspiciousLiteral, &value, node.Location())
	}

	c.collectSignals(value)

	if !featureflags.EscapedStringSignals.Enabled() {
		return
	}
	if s := node.Token(); detections.IsHighlyEscaped(s, escapedCountThreshold, escapedFrequencyThreshold) {
		escaped := staticanalysis.EscapedString{
			Value:           s.Value,
			Raw:             s.Raw,
			LevenshteinDist: s.LevenshteinDist(),
		}
		c.mu.Lock()
		c.signals.EscapedStrings = append(c.signals.EscapedStrings, escaped)
		c.mu.Unlock()
	}
}

// Warnings returns a copy of the recorded warnings.
func (c *Context) Warnings() []staticanalysis.Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]staticanalysis.Warning{}, c.warnings...)
}

// Result returns a snapshot of everything recorded so far.
func (c *Context) Result(filename string, literals int) staticanalysis.FileResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	signals := staticanalysis.StringSignals{
		HexStrings:     append([]string(nil), c.signals.HexStrings...),
		Base64Strings:  append([]string(nil), c.signals.Base64Strings...),
		URLs:           append([]string(nil), c.signals.URLs...),
		IPAddresses:    append([]string(nil), c.signals.IPAddresses...),
		EscapedStrings: append([]staticanalysis.EscapedString(nil), c.signals.EscapedStrings...),
	}
	return staticanalysis.FileResult{
		Filename:      filename,
		Literals:      literals,
		Warnings:      append([]staticanalysis.Warning{}, c.warnings...),
		Dependencies:  c.deps.List(),
		Signals:       signals,
		LiteralScores: append([]int(nil), c.literalScores...),
	}
}
