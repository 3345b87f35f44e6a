package staticanalysis

import (
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

// WarningKind names the type of finding recorded by a Warning.
type WarningKind string

const (
	// UnsafeImport is raised when a Node.js built-in module name is hidden
	// inside an encoded string literal.
	UnsafeImport WarningKind = "unsafe-import"

	// EncodedLiteral is raised for a hex-encoded string literal that decodes to
	// "require" or that is not a well-known safe hex value.
	EncodedLiteral WarningKind = "encoded-literal"

	// ShadyLink is raised for a URL whose top-level domain is frequently used
	// for disposable or malicious hosting.
	ShadyLink WarningKind = "shady-link"

	// SuspiciousLiteral is raised for long string literals with a high
	// suspicion score (see detections.SuspicionScore).
	SuspiciousLiteral WarningKind = "suspicious-literal"
)

// Warning is a single finding, tagged with the location of the node that
// triggered it. Value is nil when the finding carries no value.
type Warning struct {
	Kind     WarningKind    `json:"kind"`
	Value    *string        `json:"value"`
	Location token.Location `json:"location"`
}

// Dependency is a module referenced by the scanned code.
type Dependency struct {
	Name     string         `json:"name"`
	Location token.Location `json:"location"`
}
