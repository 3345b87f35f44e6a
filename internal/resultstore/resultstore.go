package resultstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/ossf/sourcerisk/pkg/api/staticanalysis"
	"github.com/ossf/sourcerisk/pkg/pkgidentifier"
)

// ResultStore saves scan records to a gocloud.dev bucket, such as
// "file:///var/results", "gs://bucket" or "s3://bucket".
type ResultStore struct {
	bucket        string
	basePath      string
	constructPath bool
}

type (
	Option interface{ set(*ResultStore) }
	option func(*ResultStore) // option implements Option.
)

func (o option) set(sb *ResultStore) { o(sb) }

// ConstructPath will cause Save() to append a suffix to the base path
// based on the ecosystem and name of the scanned package.
func ConstructPath() Option {
	return option(func(rs *ResultStore) { rs.constructPath = true })
}

// BasePath sets the base path used while saving files to storage.
func BasePath(base string) Option {
	return option(func(rs *ResultStore) { rs.basePath = base })
}

func New(bucket string, options ...Option) *ResultStore {
	rs := &ResultStore{
		bucket: bucket,
	}
	for _, o := range options {
		o.set(rs)
	}
	return rs
}

func (rs *ResultStore) String() string {
	s := rs.bucket + "/" + rs.basePath
	if rs.constructPath {
		s += "+"
	}
	return s
}

func (rs *ResultStore) openBucket(ctx context.Context) (*blob.Bucket, error) {
	bkt, err := blob.OpenBucket(ctx, rs.bucket)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", rs.bucket, err)
	}
	return bkt, nil
}

func (rs *ResultStore) generatePath(p pkgidentifier.PkgIdentifier) string {
	dir := rs.basePath
	if rs.constructPath {
		dir = path.Join(dir, p.Ecosystem, p.Name)
	}
	return dir
}

// MakeFilename returns the default filename to use for saving scan results,
// using an optional label.
// If the package has a version, the default filename is
// "<label>-<version>.json" if label is nonempty, or <version>.json otherwise.
// If the package does not have a version specified, the default filename is
// "<label>.json" if label is nonempty, or "results.json" if not.
func MakeFilename(p pkgidentifier.PkgIdentifier, label string) string {
	prefix := "results"
	version := p.Version

	if version != "" && label != "" {
		prefix = label + "-" + version
	} else if version != "" {
		prefix = version
	} else if label != "" {
		prefix = label
	}
	return prefix + ".json"
}

// SaveWithFilename saves record to the bucket with the given filename, and
// returns the key it was written to.
func (rs *ResultStore) SaveWithFilename(ctx context.Context, filename string, record *staticanalysis.Record) (string, error) {
	if filename == "" {
		return "", errors.New("filename cannot be empty")
	}

	b, err := json.Marshal(record)
	if err != nil {
		return "", err
	}

	bkt, err := rs.openBucket(ctx)
	if err != nil {
		return "", err
	}
	defer bkt.Close()

	uploadPath := path.Join(rs.generatePath(record.Package()), filename)
	slog.InfoContext(ctx, "Uploading results",
		"bucket", rs.bucket,
		"path", uploadPath)

	w, err := bkt.NewWriter(ctx, uploadPath, &blob.WriterOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}
	if _, err := w.Write(b); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return uploadPath, nil
}

// Save saves record with the default filename for its package.
func (rs *ResultStore) Save(ctx context.Context, record *staticanalysis.Record) (string, error) {
	return rs.SaveWithFilename(ctx, MakeFilename(record.Package(), ""), record)
}
