// Package staticanalysis scans JavaScript source files for literals that hide
// imports, payloads or links, by running probes over each literal node.
package staticanalysis

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/ossf/sourcerisk/internal/log"
	"github.com/ossf/sourcerisk/internal/staticanalysis/analysis"
	"github.com/ossf/sourcerisk/internal/staticanalysis/parsing"
	"github.com/ossf/sourcerisk/internal/staticanalysis/probes"
	"github.com/ossf/sourcerisk/internal/utils"
	api "github.com/ossf/sourcerisk/pkg/api/staticanalysis"
)

// DefaultExtensions lists the file extensions scanned when ScanOptions.Extensions
// is empty.
var DefaultExtensions = []string{".js", ".mjs", ".cjs"}

const defaultConcurrency = 4

// ScanOptions controls which files ScanPackageFiles looks at and how.
type ScanOptions struct {
	// Extensions of the files to scan, including the leading dot.
	Extensions []string

	// Exclude holds glob patterns (path.Match syntax). A file or directory is
	// skipped if its slash separated path relative to the scan root, or its
	// base name, matches any pattern.
	Exclude []string

	// Concurrency is the maximum number of files scanned at once.
	Concurrency int

	// Hex overrides the hex safety oracle given to probes.
	Hex probes.HexOracle
}

func (o ScanOptions) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o ScanOptions) concurrency() int {
	if o.Concurrency <= 0 {
		return defaultConcurrency
	}
	return o.Concurrency
}

func (o ScanOptions) excluded(relPath string) bool {
	base := path.Base(relPath)
	for _, pattern := range o.Exclude {
		if ok, _ := path.Match(pattern, relPath); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func (o ScanOptions) selected(relPath string) bool {
	ext := strings.ToLower(path.Ext(relPath))
	return slices.Contains(o.extensions(), ext)
}

/*
ScanSource runs the probes of runner over every literal node in source, in
source order, and returns what they reported. Each call uses a fresh analysis
context, so results of different files never mix.

If ctx is cancelled the scan stops early and returns the partial result along
with an error wrapping ctx.Err().
*/
func ScanSource(ctx context.Context, filename, source string, runner *probes.Runner, hex probes.HexOracle) (api.FileResult, error) {
	ac := analysis.New()
	opts := probes.Options{Analysis: ac, Hex: hex}

	literals := 0
	var scanErr error
	for _, node := range parsing.FindNodes(source) {
		if err := ctx.Err(); err != nil {
			scanErr = err
			break
		}
		if l, ok := node.(*parsing.LiteralNode); ok {
			if _, isString := l.StringValue(); isString {
				literals++
			}
		}
		runner.Run(node, opts)
	}
	if scanErr == nil {
		// the last node may have been cut short
		scanErr = ctx.Err()
	}

	result := ac.Result(filename, literals)
	result.Size = int64(len(source))
	result.SHA256 = utils.GetSHA256Hash([]byte(source))
	if scanErr != nil {
		slog.WarnContext(ctx, "scan interrupted", "filename", filename, "literals", literals, "error", scanErr)
		return result, fmt.Errorf("scan of %s interrupted: %w", filename, scanErr)
	}
	return result, nil
}

// enumeratePackageFiles returns the paths, relative to root, of the regular
// files below root that opts selects for scanning.
func enumeratePackageFiles(root string, opts ScanOptions) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if opts.excluded(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && opts.selected(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	return paths, err
}

/*
ScanPackageFiles walks the directory tree rooted at dir and scans every file
selected by opts, several at a time. Results are sorted by filename, which is
relative to dir and slash separated.

Files that cannot be read are logged and left out of the results. An error
walking the tree is returned, as is cancellation of ctx.
*/
func ScanPackageFiles(ctx context.Context, dir string, runner *probes.Runner, opts ScanOptions) ([]api.FileResult, error) {
	paths, err := enumeratePackageFiles(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("error enumerating package files: %w", err)
	}
	slog.InfoContext(ctx, "scanning package files", "dir", dir, "count", len(paths))

	results := make([]*api.FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	for i, rel := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileCtx := log.ContextWithAttrs(gctx, slog.String("filename", rel))
			content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if err != nil {
				slog.WarnContext(fileCtx, "skipping unreadable file", "error", err)
				return nil
			}
			r, err := ScanSource(fileCtx, rel, string(content), runner, opts.Hex)
			if err != nil {
				return err
			}
			results[i] = &r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan of %s aborted: %w", dir, err)
	}

	var fileResults []api.FileResult
	for _, r := range results {
		if r != nil {
			fileResults = append(fileResults, *r)
		}
	}
	slices.SortFunc(fileResults, func(a, b api.FileResult) int {
		return strings.Compare(a.Filename, b.Filename)
	})
	return fileResults, nil
}

/*
ScanPath scans a single source file, a directory tree or a package archive.

Archives (see utils.IsArchive) are extracted into a temporary directory that
is removed once the scan completes. A single file is scanned regardless of
its extension and reported under its base name.
*/
func ScanPath(ctx context.Context, target string, runner *probes.Runner, opts ScanOptions) ([]api.FileResult, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	ctx = log.ContextWithAttrs(ctx, log.LabelAttr("target", target))

	if info.IsDir() {
		return ScanPackageFiles(ctx, target, runner, opts)
	}

	if utils.IsArchive(target) {
		extractDir, err := os.MkdirTemp("", "sourcerisk-")
		if err != nil {
			return nil, fmt.Errorf("create extraction dir: %w", err)
		}
		defer func() {
			if err := os.RemoveAll(extractDir); err != nil {
				slog.WarnContext(ctx, "failed to remove extraction dir", "dir", extractDir, "error", err)
			}
		}()
		if err := utils.ExtractArchiveFile(ctx, target, extractDir); err != nil {
			return nil, fmt.Errorf("extract %s: %w", target, err)
		}
		return ScanPackageFiles(ctx, extractDir, runner, opts)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return nil, err
	}
	r, err := ScanSource(ctx, filepath.Base(target), string(content), runner, opts.Hex)
	if err != nil {
		return nil, err
	}
	return []api.FileResult{r}, nil
}
