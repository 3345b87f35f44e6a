package staticanalysis

import (
	"time"

	"github.com/ossf/sourcerisk/pkg/pkgidentifier"
)

// SchemaVersion identifies the scan results JSON schema version.
const SchemaVersion = "1.0"

// Record is the top-level struct which is serialised to produce scan
// JSON files. This struct should not change unless SchemaVersion is also incremented.
type Record struct {
	SchemaVersion string    `json:"schema_version"`
	Ecosystem     string    `json:"ecosystem,omitempty"`
	Name          string    `json:"name,omitempty"`
	Version       string    `json:"version,omitempty"`
	Created       time.Time `json:"created"`
	Results       Results   `json:"results"`
}

// Results holds the output of a scan, one entry per scanned file.
type Results struct {
	Files []FileResult `json:"files"`
}

// CreateRecord associates a set of scan Results with the package that was
// scanned, to produce a Record object that can be serialised.
func CreateRecord(r *Results, pkg pkgidentifier.PkgIdentifier) *Record {
	return &Record{
		SchemaVersion: SchemaVersion,
		Ecosystem:     pkg.Ecosystem,
		Name:          pkg.Name,
		Version:       pkg.Version,
		Created:       time.Now().UTC(),
		Results:       *r,
	}
}

// Package returns the identifier of the scanned package.
func (r *Record) Package() pkgidentifier.PkgIdentifier {
	return pkgidentifier.PkgIdentifier{Ecosystem: r.Ecosystem, Name: r.Name, Version: r.Version}
}

// FileResult holds scan data for a single file. Filename is the path to the
// file relative to the scan root.
type FileResult struct {
	Filename      string        `json:"filename"`
	Size          int64         `json:"size"`
	SHA256        string        `json:"sha256,omitempty"`
	Literals      int           `json:"literals"`
	Warnings      []Warning     `json:"warnings"`
	Dependencies  []Dependency  `json:"dependencies"`
	Signals       StringSignals `json:"signals"`
	LiteralScores []int         `json:"literal_scores,omitempty"`
}

// CountWarnings returns the number of warnings of each kind across all files.
func (r Results) CountWarnings() map[WarningKind]int {
	counts := map[WarningKind]int{}
	for _, f := range r.Files {
		for _, w := range f.Warnings {
			counts[w.Kind]++
		}
	}
	return counts
}
