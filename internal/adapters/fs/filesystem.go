// Package fs provides the disk adapter used by feeds and package explosion.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	hasher *Hasher
}

// NewFileSystem creates a new FileSystem.
func NewFileSystem(hasher *Hasher) *FileSystem {
	return &FileSystem{hasher: hasher}
}

// CreateDirectory creates path and any missing parents.
func (f *FileSystem) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// CleanDirectory removes everything inside path.
func (f *FileSystem) CleanDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
	}

	for _, entry := range entries {
		target := filepath.Join(path, entry.Name())
		if err := os.RemoveAll(target); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to clean directory"), "path", target)
		}
	}
	return nil
}

// Copy copies src to dst, creating the parent of dst if needed.
func (f *FileSystem) Copy(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if err := f.WriteFile(dst, in); err != nil {
		return zerr.With(err, "source", src)
	}
	return nil
}

// DeleteFile removes the file at path.
func (f *FileSystem) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to delete file"), "path", path)
	}
	return nil
}

// WriteFile writes the contents of r to path, creating parents as needed.
func (f *FileSystem) WriteFile(path string, r io.Reader) error {
	if err := f.CreateDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", path)
	}

	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", path)
	}
	return nil
}

// FindFiles lists the regular files directly inside dir whose names match pattern.
func (f *FileSystem) FindFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid file pattern"), "pattern", pattern)
		}
		if matched {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

// Hash returns the XXHash checksum of the file at path.
func (f *FileSystem) Hash(path string) (string, error) {
	return f.hasher.Checksum(path)
}
