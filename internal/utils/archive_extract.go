package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v4"
)

// ExtractArchiveFile extracts a package archive (such as an npm .tgz) located at
// archivePath, using outputDir as the root of the extracted files.
// Entries that would be written outside of outputDir cause an error.
func ExtractArchiveFile(ctx context.Context, archivePath string, outputDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	format, input, err := archiver.Identify(archivePath, f)
	if err != nil {
		return fmt.Errorf("identify %s: %w", archivePath, err)
	}
	extractor, ok := format.(archiver.Extractor)
	if !ok {
		return fmt.Errorf("cannot extract %s archives", format.Name())
	}

	root := filepath.Clean(outputDir) + string(os.PathSeparator)
	return extractor.Extract(ctx, input, nil, func(ctx context.Context, f archiver.File) error {
		outputPath := filepath.Join(outputDir, f.NameInArchive)
		// ZipSlip (https://snyk.io/research/zip-slip-vulnerability)
		if !strings.HasPrefix(outputPath, root) {
			return fmt.Errorf("archive path escapes output dir: %s", f.NameInArchive)
		}

		if f.IsDir() {
			if err := os.MkdirAll(outputPath, 0o755); err != nil {
				return fmt.Errorf("mkdir failed: %w", err)
			}
			return nil
		}

		// some archives don't include an explicit entry for parent directories
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return fmt.Errorf("create parent dirs for %s failed: %w", f.NameInArchive, err)
		}
		if !f.Mode().IsRegular() {
			// links and devices are never scanned
			return nil
		}

		reader, err := f.Open()
		if err != nil {
			return fmt.Errorf("archive content open failed: %w", err)
		}
		defer reader.Close()

		extractedFile, err := os.OpenFile(outputPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("create file failed: %w", err)
		}
		if _, err = io.Copy(extractedFile, reader); err != nil {
			extractedFile.Close()
			return fmt.Errorf("copy failed: %w", err)
		}
		if err = extractedFile.Close(); err != nil {
			return fmt.Errorf("close failed: %w", err)
		}
		return nil
	})
}

// IsArchive reports whether path names a package archive that
// ExtractArchiveFile can handle, judging by its extension.
func IsArchive(path string) bool {
	for _, ext := range []string{".tgz", ".tar.gz", ".tar", ".zip"} {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}
