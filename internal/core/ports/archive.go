package ports

import "io"

// ArchiveCodec reads package archives. The archive format itself stays behind this interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveCodec interface {
	// Walk streams every payload entry of the archive at path to fn, in archive order.
	// Entry names are slash-separated and relative to the archive root.
	// Packaging metadata (the manifest, relationship parts) is not part of the payload.
	Walk(path string, fn func(name string, r io.Reader) error) error

	// Manifest returns the raw package manifest stored in the archive at path.
	Manifest(path string) ([]byte, error)
}
