// Package config loads the optional YAML configuration file of the scan
// command.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ossf/sourcerisk/internal/featureflags"
	"github.com/ossf/sourcerisk/internal/staticanalysis"
)

const (
	// DefaultFile is read when no config file is named explicitly.
	DefaultFile = ".sourcerisk.yaml"

	maxConfigSize  = 1 * 1024 * 1024
	maxConcurrency = 256
)

var ErrInvalidConfig = errors.New("invalid configuration")

var uploadSchemes = []string{"file", "gs", "s3"}

// Config is the structure of the configuration file.
type Config struct {
	// Extensions of the files to scan, e.g. ".js".
	Extensions []string `yaml:"extensions,omitempty"`

	// Exclude holds glob patterns of files and directories to skip.
	Exclude []string `yaml:"exclude,omitempty"`

	Concurrency int `yaml:"concurrency,omitempty"`

	// Upload is a gocloud.dev bucket URL results are saved to.
	Upload string `yaml:"upload,omitempty"`

	// Features enables or disables feature flags by name.
	Features map[string]bool `yaml:"features,omitempty"`
}

/*
Load reads the configuration file at filePath.

If filePath is empty DefaultFile is tried, and an empty Config is returned if
it does not exist. Validation failures wrap ErrInvalidConfig.
*/
func Load(filePath string) (Config, error) {
	if filePath == "" {
		filePath = DefaultFile
		if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("%w: file size (%d bytes) exceeds maximum allowed size (%d bytes)",
			ErrInvalidConfig, info.Size(), maxConfigSize)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Parse(io.LimitReader(f, maxConfigSize))
}

// Parse decodes and validates a YAML configuration. Unknown fields are
// rejected.
func Parse(r io.Reader) (Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var c Config
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values of c.
func (c *Config) Validate() error {
	if c.Concurrency < 0 || c.Concurrency > maxConcurrency {
		return fmt.Errorf("%w: concurrency %d out of range [0, %d]", ErrInvalidConfig, c.Concurrency, maxConcurrency)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	for _, pattern := range c.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %w", ErrInvalidConfig, pattern, err)
		}
	}
	if c.Upload != "" {
		u, err := url.Parse(c.Upload)
		if err != nil {
			return fmt.Errorf("%w: upload: %w", ErrInvalidConfig, err)
		}
		if !isUploadScheme(u.Scheme) {
			return fmt.Errorf("%w: upload scheme %q is not one of %v", ErrInvalidConfig, u.Scheme, uploadSchemes)
		}
	}
	for name := range c.Features {
		if _, ok := featureflags.State()[name]; !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalidConfig, featureflags.ErrUndefinedFlag, name)
		}
	}
	return nil
}

func isUploadScheme(scheme string) bool {
	for _, s := range uploadSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// ApplyFeatures sets the feature flags named in c.Features.
func (c *Config) ApplyFeatures() error {
	for name, enabled := range c.Features {
		if err := featureflags.Set(name, enabled); err != nil {
			return err
		}
	}
	return nil
}

// ScanOptions returns the scan settings held by c.
func (c *Config) ScanOptions() staticanalysis.ScanOptions {
	return staticanalysis.ScanOptions{
		Extensions:  c.Extensions,
		Exclude:     c.Exclude,
		Concurrency: c.Concurrency,
	}
}
