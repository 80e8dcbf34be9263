package ports

import "go.trai.ch/ripple/internal/core/domain"

// NugetFile is a package archive on disk together with its parsed identity.
//
//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock_feed.go -package=mocks
type NugetFile interface {
	// Identity returns the name and version parsed from the archive filename.
	Identity() domain.PackageIdentity

	// FileName returns the path of the archive.
	FileName() string

	// ExplodedDirectory returns the directory the package explodes into under root.
	ExplodedDirectory(root string) string

	// ExplodeTo extracts the archive into its exploded directory under root and
	// moves the archive itself there. The original path is no longer valid afterwards.
	// It returns a handle on the moved archive.
	ExplodeTo(root string) (NugetFile, error)

	// CopyTo copies the archive (not its contents) into dir.
	CopyTo(dir string) (NugetFile, error)

	// Checksum returns a content checksum of the archive.
	Checksum() (string, error)
}

// Feed answers point queries against one directory of package archives.
// Implementations must be safe for concurrent use.
type Feed interface {
	// Find returns the archive with the dependency's exact name and version,
	// or nil, nil when the feed does not hold it.
	Find(dep domain.Dependency) (NugetFile, error)

	// FindLatest returns the highest version of the dependency's package that
	// passes the stability policy. The dependency's own policy overrides the feed's.
	FindLatest(dep domain.Dependency) (NugetFile, error)
}

// FloatingFeed is a Feed that can also list the latest version of every package it holds.
type FloatingFeed interface {
	Feed

	// GetLatest returns one archive per distinct (case-insensitive) package name.
	GetLatest() ([]NugetFile, error)
}
