package pkgidentifier

import (
	"errors"
	"testing"
)

func TestStringify(t *testing.T) {
	tests := map[string]struct {
		input    PkgIdentifier
		expected string
	}{
		"simple stringify": {
			input:    PkgIdentifier{Name: "genericpackage", Version: "2.05.0", Ecosystem: "npm"},
			expected: "npm-genericpackage-2.05.0",
		},
		"pkg name with space": {
			input:    PkgIdentifier{Name: "cool package", Version: "1.0.0", Ecosystem: "pypi"},
			expected: "pypi-cool package-1.0.0",
		},
		"pkg name with forward slash": {
			input:    PkgIdentifier{Name: "@ada/evilpackage", Version: "99.0.0", Ecosystem: "npm"},
			expected: "npm-@ada/evilpackage-99.0.0",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.input.String()
			expected := test.expected
			if got != expected {
				t.Fatalf("%v: returned %v; expected %v", name, got, expected)
			}
		})
	}
}

func TestFromPurl(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected PkgIdentifier
	}{
		"npm with version": {
			input:    "pkg:npm/left-pad@1.3.0",
			expected: PkgIdentifier{Name: "left-pad", Version: "1.3.0", Ecosystem: "npm"},
		},
		"npm scoped": {
			input:    "pkg:npm/%40babel/core@7.0.0",
			expected: PkgIdentifier{Name: "@babel/core", Version: "7.0.0", Ecosystem: "npm"},
		},
		"no version": {
			input:    "pkg:npm/event-stream",
			expected: PkgIdentifier{Name: "event-stream", Ecosystem: "npm"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FromPurl(test.input)
			if err != nil {
				t.Fatalf("FromPurl(%q) returned error: %v", test.input, err)
			}
			if got != test.expected {
				t.Fatalf("FromPurl(%q) = %v; expected %v", test.input, got, test.expected)
			}
		})
	}
}

func TestFromPurlInvalid(t *testing.T) {
	for _, input := range []string{"", "left-pad", "npm/left-pad"} {
		t.Run(input, func(t *testing.T) {
			if _, err := FromPurl(input); !errors.Is(err, ErrInvalidPurl) {
				t.Fatalf("FromPurl(%q) error = %v; expected ErrInvalidPurl", input, err)
			}
		})
	}
}

func TestPurlRoundTrip(t *testing.T) {
	pkg := PkgIdentifier{Name: "@ada/evilpackage", Version: "99.0.0", Ecosystem: "npm"}
	got, err := FromPurl(pkg.Purl())
	if err != nil {
		t.Fatalf("FromPurl(%q) returned error: %v", pkg.Purl(), err)
	}
	if got != pkg {
		t.Fatalf("round trip returned %v; expected %v", got, pkg)
	}
}
