package nuget

import (
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
)

var _ ports.FloatingFeed = (*FloatingFeed)(nil)

// FloatingFeed is a Feed that can also report the latest version of every package it holds.
type FloatingFeed struct {
	*Feed
}

// NewFloatingFeed creates a floating feed over source.Path.
func NewFloatingFeed(
	source domain.FeedSource,
	layout domain.LayoutMode,
	fsys ports.FileSystem,
	codec ports.ArchiveCodec,
	log ports.Logger,
) *FloatingFeed {
	return &FloatingFeed{Feed: NewFeed(source, layout, fsys, codec, log)}
}

// GetLatest returns the latest admitted archive of each package, grouping names
// case-insensitively and ordered by lower-cased name. The reported name is the
// one carried by the winning archive.
func (f *FloatingFeed) GetLatest() ([]ports.NugetFile, error) {
	idx, err := f.load()
	if err != nil {
		return nil, err
	}

	out := make([]ports.NugetFile, 0, len(idx.names))
	for _, name := range idx.names {
		if file := latest(idx.byName[name], f.source.Stability); file != nil {
			out = append(out, file)
		}
	}
	return out, nil
}
