// Package pkgidentifier names the package a scan was run against.
package pkgidentifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/package-url/packageurl-go"
)

var ErrInvalidPurl = errors.New("invalid package url")

type PkgIdentifier struct {
	Name      string
	Version   string
	Ecosystem string
}

func (pkg PkgIdentifier) String() string {
	return strings.Join([]string{pkg.Ecosystem, pkg.Name, pkg.Version}, "-")
}

// IsZero reports whether no package was identified.
func (pkg PkgIdentifier) IsZero() bool {
	return pkg == PkgIdentifier{}
}

// Purl renders the identifier as a package URL, e.g. pkg:npm/%40scope/name@1.0.0.
func (pkg PkgIdentifier) Purl() string {
	namespace, name := "", pkg.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		namespace, name = name[:i], name[i+1:]
	}
	return packageurl.NewPackageURL(pkg.Ecosystem, namespace, name, pkg.Version, nil, "").ToString()
}

// FromPurl parses a package URL such as "pkg:npm/left-pad@1.3.0".
// Namespaces are folded into the name, so "pkg:npm/%40babel/core" has the name "@babel/core".
func FromPurl(purl string) (PkgIdentifier, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return PkgIdentifier{}, fmt.Errorf("%w %q: %v", ErrInvalidPurl, purl, err)
	}
	if p.Name == "" {
		return PkgIdentifier{}, fmt.Errorf("%w %q: missing name", ErrInvalidPurl, purl)
	}
	name := p.Name
	if p.Namespace != "" {
		name = p.Namespace + "/" + p.Name
	}
	return PkgIdentifier{Name: name, Version: p.Version, Ecosystem: p.Type}, nil
}
