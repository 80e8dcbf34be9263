package nuget

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/ripple/internal/core/ports"
)

// index groups the archives of a feed directory by lower-cased package name.
// It is immutable once built.
type index struct {
	byName map[string][]*File
	names  []string
}

// buildIndex scans dir for package archives. Archives whose filename does not
// parse into a name and a version are skipped with a warning.
func buildIndex(dir string, open func(path string) (*File, error), fsys ports.FileSystem, log ports.Logger) (*index, error) {
	paths, err := fsys.FindFiles(dir, "*"+ArchiveExt)
	if err != nil {
		return nil, err
	}

	idx := &index{byName: make(map[string][]*File)}
	for _, path := range paths {
		file, err := open(path)
		if err != nil {
			log.Warn(fmt.Sprintf("skipping unrecognised package archive %s: %v", path, err))
			continue
		}
		key := strings.ToLower(file.identity.Name)
		idx.byName[key] = append(idx.byName[key], file)
	}

	for name, files := range idx.byName {
		// Highest version first; equal versions keep filename order.
		slices.SortStableFunc(files, func(a, b *File) int {
			return b.identity.Version.Compare(a.identity.Version)
		})
		idx.names = append(idx.names, name)
	}
	slices.Sort(idx.names)

	return idx, nil
}

// versions returns the archives of the named package, highest version first.
func (i *index) versions(name string) []*File {
	return i.byName[strings.ToLower(name)]
}
