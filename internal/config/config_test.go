package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ossf/sourcerisk/internal/featureflags"
	"github.com/ossf/sourcerisk/internal/staticanalysis"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `extensions: [".js", ".ts"]
exclude:
  - node_modules
  - "*.min.js"
concurrency: 8
upload: file:///tmp/results
features:
  SuspiciousLiteralWarnings: false
`)

	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		Extensions:  []string{".js", ".ts"},
		Exclude:     []string{"node_modules", "*.min.js"},
		Concurrency: 8,
		Upload:      "file:///tmp/results",
		Features:    map[string]bool{"SuspiciousLiteralWarnings": false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	wantOpts := staticanalysis.ScanOptions{
		Extensions:  want.Extensions,
		Exclude:     want.Exclude,
		Concurrency: 8,
	}
	if opts := got.ScanOptions(); !reflect.DeepEqual(opts, wantOpts) {
		t.Errorf("ScanOptions() = %+v, want %+v", opts, wantOpts)
	}
}

func TestLoadDefaultMissing(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(got, Config{}) {
		t.Errorf("Load(\"\") = %+v, want empty config", got)
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(got, Config{}) {
		t.Errorf("Parse() = %+v, want empty config", got)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "colour: red\n"},
		{"bad yaml", "extensions: [\n"},
		{"negative concurrency", "concurrency: -1\n"},
		{"huge concurrency", "concurrency: 100000\n"},
		{"extension without dot", "extensions: [js]\n"},
		{"bad exclude pattern", "exclude: [\"[\"]\n"},
		{"bad upload scheme", "upload: ftp://example.com/bucket\n"},
		{"unknown feature", "features:\n  NoSuchFeature: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyFeatures(t *testing.T) {
	orig := featureflags.EscapedStringSignals.Enabled()
	t.Cleanup(func() {
		if err := featureflags.Set("EscapedStringSignals", orig); err != nil {
			t.Fatal(err)
		}
	})

	c := Config{Features: map[string]bool{"EscapedStringSignals": false}}
	if err := c.ApplyFeatures(); err != nil {
		t.Fatalf("ApplyFeatures() error = %v", err)
	}
	if featureflags.EscapedStringSignals.Enabled() {
		t.Error("EscapedStringSignals still enabled")
	}
}
