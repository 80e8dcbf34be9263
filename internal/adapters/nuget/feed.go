package nuget

import (
	"sync"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Feed = (*Feed)(nil)

// Feed answers exact and latest-version queries against a directory of archives.
// The directory is indexed once, on the first query.
type Feed struct {
	source domain.FeedSource
	load   func() (*index, error)
}

// NewFeed creates a feed over source.Path. Archives found there explode using layout.
// A source without a stability policy admits released versions only.
func NewFeed(
	source domain.FeedSource,
	layout domain.LayoutMode,
	fsys ports.FileSystem,
	codec ports.ArchiveCodec,
	log ports.Logger,
) *Feed {
	source.Stability = source.Stability.Or(domain.StabilityReleasedOnly)
	open := func(path string) (*File, error) {
		return OpenFile(path, layout, fsys, codec)
	}
	return &Feed{
		source: source,
		load: sync.OnceValues(func() (*index, error) {
			idx, err := buildIndex(source.Path, open, fsys, log)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to index feed"), "feed", source.Path)
			}
			return idx, nil
		}),
	}
}

// Source returns the configuration the feed was created from.
func (f *Feed) Source() domain.FeedSource {
	return f.source
}

// Find returns the archive with the dependency's name and version, or nil if the feed lacks it.
func (f *Feed) Find(dep domain.Dependency) (ports.NugetFile, error) {
	idx, err := f.load()
	if err != nil {
		return nil, err
	}

	version, err := dep.SemanticVersion()
	if err != nil {
		return nil, err
	}

	for _, file := range idx.versions(dep.Name) {
		if file.identity.Version.Equal(version) {
			return file, nil
		}
	}
	return nil, nil
}

// FindLatest returns the highest version of the dependency's package admitted by
// the dependency's stability policy, or the feed's when the dependency has none.
func (f *Feed) FindLatest(dep domain.Dependency) (ports.NugetFile, error) {
	idx, err := f.load()
	if err != nil {
		return nil, err
	}

	if file := latest(idx.versions(dep.Name), dep.Stability.Or(f.source.Stability)); file != nil {
		return file, nil
	}

	return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no eligible version in feed"),
		"package", dep.Name), "feed", f.source.Path)
}

// latest returns the first file admitted by stability from files sorted highest first.
func latest(files []*File, stability domain.Stability) *File {
	for _, file := range files {
		if stability.Allows(file.identity) {
			return file
		}
	}
	return nil
}
