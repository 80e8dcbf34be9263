// Package archive reads zip-format package archives.
package archive

import (
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

const manifestExt = ".nuspec"

var _ ports.ArchiveCodec = (*Codec)(nil)

// Codec implements ports.ArchiveCodec for zip archives.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Walk streams every payload entry of the archive at archivePath to fn.
func (c *Codec) Walk(archivePath string, fn func(name string, r io.Reader) error) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archivePath)
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || isPackagingEntry(f.Name) {
			continue
		}
		if err := visit(f, fn); err != nil {
			return zerr.With(zerr.With(err, "path", archivePath), "entry", f.Name)
		}
	}
	return nil
}

// Manifest returns the manifest stored at the root of the archive at archivePath.
func (c *Codec) Manifest(archivePath string) ([]byte, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archivePath)
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	for _, f := range zr.File {
		if !isManifest(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", archivePath)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", archivePath)
		}
		return data, nil
	}

	return nil, zerr.With(zerr.New("archive has no manifest"), "path", archivePath)
}

func visit(f *zip.File, fn func(name string, r io.Reader) error) error {
	rc, err := f.Open()
	if err != nil {
		return zerr.Wrap(err, "failed to open archive entry")
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	return fn(unescape(f.Name), rc)
}

// isManifest reports whether name is a manifest at the archive root.
func isManifest(name string) bool {
	return !strings.Contains(name, "/") && strings.EqualFold(path.Ext(name), manifestExt)
}

// isPackagingEntry reports whether name is packaging metadata rather than payload.
func isPackagingEntry(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case lower == "[content_types].xml":
		return true
	case strings.HasPrefix(lower, "_rels/"), strings.HasPrefix(lower, "package/"):
		return true
	default:
		return isManifest(name)
	}
}

// unescape decodes the percent-encoding packers apply to entry names.
func unescape(name string) string {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}
