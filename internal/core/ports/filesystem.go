// Package ports defines the core interfaces for the application.
package ports

import "io"

// FileSystem abstracts the disk operations performed by feeds and package explosion.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// CreateDirectory creates path and any missing parents.
	CreateDirectory(path string) error

	// CleanDirectory removes everything inside path, keeping path itself.
	// A missing directory is not an error.
	CleanDirectory(path string) error

	// Copy copies the file at src to dst, creating the parent of dst if needed.
	Copy(src, dst string) error

	// DeleteFile removes the file at path. A missing file is not an error.
	DeleteFile(path string) error

	// WriteFile writes the contents of r to path, creating parents as needed.
	WriteFile(path string, r io.Reader) error

	// FindFiles lists the regular files directly inside dir whose names match
	// the glob pattern, sorted by name.
	FindFiles(dir, pattern string) ([]string, error)

	// Hash returns a content checksum of the file at path.
	Hash(path string) (string, error)
}
