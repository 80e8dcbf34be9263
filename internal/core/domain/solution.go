package domain

import (
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// SolutionFileName is the name of the solution file.
const SolutionFileName = "ripple.yaml"

// LayoutMode selects how exploded packages are named on disk.
type LayoutMode int

const (
	// LayoutClassic explodes packages into root/Name.Version.
	LayoutClassic LayoutMode = iota
	// LayoutRipple explodes packages into root/Name.
	LayoutRipple
)

// String implements fmt.Stringer.
func (m LayoutMode) String() string {
	if m == LayoutRipple {
		return "ripple"
	}
	return "classic"
}

// ParseLayoutMode parses "classic" or "ripple". An empty string means ripple.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ripple":
		return LayoutRipple, nil
	case "classic":
		return LayoutClassic, nil
	default:
		return LayoutRipple, zerr.With(zerr.New("unknown layout mode"), "mode", s)
	}
}

// FeedKind selects the query strategy of a feed.
type FeedKind int

const (
	// FeedFixed answers exact and latest lookups for one package at a time.
	FeedFixed FeedKind = iota
	// FeedFloating additionally lists the latest version of every package it holds.
	FeedFloating
)

// String implements fmt.Stringer.
func (k FeedKind) String() string {
	if k == FeedFloating {
		return "floating"
	}
	return "fixed"
}

// FeedSource describes a directory-backed package feed configured for a solution.
type FeedSource struct {
	Path      string
	Kind      FeedKind
	Stability Stability
}

// Project is a member of a solution with its own dependencies.
type Project struct {
	Name         string
	Dependencies *DependencySet
}

// NewProject creates a project with the given dependencies.
func NewProject(name string, deps ...Dependency) *Project {
	return &Project{Name: name, Dependencies: NewDependencySet(deps...)}
}

// Solution aggregates the solution-level dependencies, the projects and the feeds.
type Solution struct {
	Name string

	// File is the solution file the solution was loaded from, if any.
	File string

	// Directory is the directory holding the solution file.
	Directory string

	// PackagesDirectory is where packages are exploded. Relative paths are
	// resolved against Directory.
	PackagesDirectory string

	Layout       LayoutMode
	Feeds        []FeedSource
	Dependencies *DependencySet
	Projects     []*Project
}

// NewSolution creates an empty solution.
func NewSolution(name string) *Solution {
	return &Solution{
		Name:              name,
		PackagesDirectory: "packages",
		Layout:            LayoutRipple,
		Dependencies:      NewDependencySet(),
	}
}

// AddProject appends p to the solution.
func (s *Solution) AddProject(p *Project) {
	s.Projects = append(s.Projects, p)
}

// FindProject returns the project called name (case-insensitive).
func (s *Solution) FindProject(name string) (*Project, error) {
	for _, p := range s.Projects {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(ErrProjectNotFound, "unknown project"), "project", name)
}

// ProjectsDependingOn yields every project that declares a dependency on name.
func (s *Solution) ProjectsDependingOn(name string) iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		for _, p := range s.Projects {
			if p.Dependencies.Has(name) && !yield(p) {
				return
			}
		}
	}
}

// PackagesPath returns the absolute-or-solution-relative packages directory.
func (s *Solution) PackagesPath() string {
	if filepath.IsAbs(s.PackagesDirectory) || s.Directory == "" {
		return s.PackagesDirectory
	}
	return filepath.Join(s.Directory, s.PackagesDirectory)
}

// FeedsOf returns the configured feeds of the given kind.
func (s *Solution) FeedsOf(kind FeedKind) []FeedSource {
	var out []FeedSource
	for _, f := range s.Feeds {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}
