package nuget

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var _ ports.FeedService = (*Service)(nil)

type feedKey struct {
	path      string
	kind      domain.FeedKind
	stability domain.Stability
	layout    domain.LayoutMode
}

// Service resolves dependencies against the directory feeds configured for a solution.
// Feeds are built once per configuration and shared between calls.
type Service struct {
	fs    ports.FileSystem
	codec ports.ArchiveCodec
	log   ports.Logger

	mu        sync.Mutex
	feeds     map[feedKey]ports.Feed
	manifests map[string][]declaredDependency
	group     singleflight.Group
}

// NewService creates a new Service.
func NewService(fsys ports.FileSystem, codec ports.ArchiveCodec, log ports.Logger) *Service {
	return &Service{
		fs:        fsys,
		codec:     codec,
		log:       log,
		feeds:     make(map[feedKey]ports.Feed),
		manifests: make(map[string][]declaredDependency),
	}
}

// NugetFor resolves dep to an archive. A versioned dependency is looked up exactly
// in feed order. Otherwise every feed is asked for its latest admitted version and
// the highest wins, earlier feeds winning ties.
func (s *Service) NugetFor(ctx context.Context, solution *domain.Solution, dep domain.Dependency) (ports.NugetFile, error) {
	feeds := s.feedsFor(solution)

	if dep.HasVersion() {
		for _, feed := range feeds {
			file, err := feed.Find(dep)
			if err != nil {
				return nil, err
			}
			if file != nil {
				return file, nil
			}
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no feed holds the requested version"),
			"package", dep.Name), "version", dep.Version)
	}

	candidates := make([]ports.NugetFile, len(feeds))
	g, gctx := errgroup.WithContext(ctx)
	for i, feed := range feeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := feed.FindLatest(dep)
			if errors.Is(err, domain.ErrPackageNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			candidates[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best ports.NugetFile
	for _, file := range candidates {
		if file == nil {
			continue
		}
		if best == nil || file.Identity().Version.Compare(best.Identity().Version) > 0 {
			best = file
		}
	}
	if best == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no feed holds an eligible version"), "package", dep.Name)
	}
	return best, nil
}

// DependenciesFor returns the dependencies declared in the manifest of the package dep
// resolves to. Fixed mode pins each to the lower bound of its declared range; float
// mode leaves them unversioned.
func (s *Service) DependenciesFor(
	ctx context.Context,
	solution *domain.Solution,
	dep domain.Dependency,
	mode domain.UpdateMode,
) ([]domain.Dependency, error) {
	file, err := s.NugetFor(ctx, solution, dep)
	if err != nil {
		return nil, err
	}

	declared, err := s.manifest(file.FileName())
	if err != nil {
		return nil, zerr.With(zerr.With(err, "package", dep.Name), "version", file.Identity().Version.String())
	}

	out := make([]domain.Dependency, 0, len(declared))
	for _, d := range declared {
		child := domain.FloatFor(d.Name)
		if mode == domain.ModeFixed {
			child = domain.NewDependency(d.Name, d.MinVersion)
		}
		child.Stability = dep.Stability
		out = append(out, child)
	}
	return out, nil
}

// Latest returns the latest version of every package in the solution's floating
// feeds, merged case-insensitively and ordered by lower-cased name.
func (s *Service) Latest(ctx context.Context, solution *domain.Solution) ([]domain.PackageIdentity, error) {
	best := make(map[string]domain.PackageIdentity)
	for _, feed := range s.feedsFor(solution) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		floating, ok := feed.(ports.FloatingFeed)
		if !ok {
			continue
		}
		files, err := floating.GetLatest()
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			id := file.Identity()
			key := strings.ToLower(id.Name)
			if current, ok := best[key]; !ok || id.Version.Compare(current.Version) > 0 {
				best[key] = id
			}
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]domain.PackageIdentity, 0, len(keys))
	for _, k := range keys {
		out = append(out, best[k])
	}
	return out, nil
}

// feedsFor returns the feeds of solution in configuration order, creating them on first use.
func (s *Service) feedsFor(solution *domain.Solution) []ports.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	feeds := make([]ports.Feed, 0, len(solution.Feeds))
	for _, source := range solution.Feeds {
		key := feedKey{path: source.Path, kind: source.Kind, stability: source.Stability, layout: solution.Layout}
		feed, ok := s.feeds[key]
		if !ok {
			if source.Kind == domain.FeedFloating {
				feed = NewFloatingFeed(source, solution.Layout, s.fs, s.codec, s.log)
			} else {
				feed = NewFeed(source, solution.Layout, s.fs, s.codec, s.log)
			}
			s.feeds[key] = feed
		}
		feeds = append(feeds, feed)
	}
	return feeds
}

// manifest reads and parses the manifest of the archive at path once.
func (s *Service) manifest(path string) ([]declaredDependency, error) {
	s.mu.Lock()
	cached, ok := s.manifests[path]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	v, err, _ := s.group.Do(path, func() (any, error) {
		s.mu.Lock()
		cached, ok := s.manifests[path]
		s.mu.Unlock()
		if ok {
			return cached, nil
		}

		data, err := s.codec.Manifest(path)
		if err != nil {
			return nil, err
		}
		deps, err := parseManifest(data)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}

		s.mu.Lock()
		s.manifests[path] = deps
		s.mu.Unlock()
		return deps, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]declaredDependency), nil //nolint:forcetypeassert // Only this function stores values
}
