package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// UpdateMode controls whether a dependency is pinned or re-resolved to the latest version.
type UpdateMode int

const (
	// ModeFixed pins the dependency to its configured version.
	ModeFixed UpdateMode = iota
	// ModeFloat re-resolves the dependency to the latest version each time.
	ModeFloat
)

// String implements fmt.Stringer.
func (m UpdateMode) String() string {
	if m == ModeFloat {
		return "float"
	}
	return "fixed"
}

// ParseUpdateMode parses "fixed" or "float". An empty string means fixed.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return ModeFixed, nil
	case "float", "floating":
		return ModeFloat, nil
	default:
		return ModeFixed, zerr.With(zerr.New("unknown update mode"), "mode", s)
	}
}

// Stability controls whether pre-release versions are eligible for "latest" selection.
type Stability int

const (
	// StabilityUnspecified defers to the policy of the feed being queried.
	StabilityUnspecified Stability = iota
	// StabilityReleasedOnly excludes pre-release versions.
	StabilityReleasedOnly
	// StabilityAnything admits every version.
	StabilityAnything
)

// String implements fmt.Stringer.
func (s Stability) String() string {
	switch s {
	case StabilityReleasedOnly:
		return "released"
	case StabilityAnything:
		return "anything"
	default:
		return ""
	}
}

// ParseStability parses "released" or "anything". An empty string is StabilityUnspecified.
func ParseStability(s string) (Stability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StabilityUnspecified, nil
	case "released", "releasedonly", "released-only":
		return StabilityReleasedOnly, nil
	case "anything", "any":
		return StabilityAnything, nil
	default:
		return StabilityUnspecified, zerr.With(zerr.New("unknown stability policy"), "stability", s)
	}
}

// Or returns s, or fallback when s is unspecified.
func (s Stability) Or(fallback Stability) Stability {
	if s == StabilityUnspecified {
		return fallback
	}
	return s
}

// Allows reports whether a package with the given identity passes the policy.
func (s Stability) Allows(id PackageIdentity) bool {
	return s != StabilityReleasedOnly || !id.IsPreRelease()
}

// Dependency is a named, optionally versioned reference to a package.
// It is a value type; resolution produces copies rather than mutating it.
type Dependency struct {
	// Name is matched case-insensitively.
	Name string

	// Version is empty while the dependency is unresolved.
	Version string

	Mode      UpdateMode
	Stability Stability
}

// NewDependency creates a fixed dependency on the given version.
func NewDependency(name, version string) Dependency {
	return Dependency{Name: name, Version: version, Mode: ModeFixed}
}

// FloatFor creates a floating, version-less dependency on name.
func FloatFor(name string) Dependency {
	return Dependency{Name: name, Mode: ModeFloat}
}

// IsFloat reports whether the dependency floats to the latest version.
func (d Dependency) IsFloat() bool {
	return d.Mode == ModeFloat
}

// HasVersion reports whether the dependency names a concrete version.
func (d Dependency) HasVersion() bool {
	return d.Version != ""
}

// Matches reports whether the dependency refers to the package called name.
func (d Dependency) Matches(name string) bool {
	return strings.EqualFold(d.Name, name)
}

// WithVersion returns a copy of d resolved to version.
func (d Dependency) WithVersion(version string) Dependency {
	d.Version = version
	return d
}

// AsFloat returns a floating, version-less copy of d.
func (d Dependency) AsFloat() Dependency {
	d.Mode = ModeFloat
	d.Version = ""
	return d
}

// SemanticVersion parses the dependency's version.
func (d Dependency) SemanticVersion() (Version, error) {
	v, err := ParseVersion(d.Version)
	if err != nil {
		return Version{}, zerr.With(err, "package", d.Name)
	}
	return v, nil
}

// Key returns the resolution unit of the dependency.
// Floating dependencies discard their version, so every floating reference to a
// package collapses onto one key.
func (d Dependency) Key() CacheKey {
	key := CacheKey{Name: NewInternedString(strings.ToLower(d.Name))}
	if !d.IsFloat() {
		key.Version = NewInternedString(strings.ToLower(d.Version))
	}
	return key
}

// String implements fmt.Stringer.
func (d Dependency) String() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "," + d.Version
}

// CacheKey is the normalized identity used to resolve each package at most once per run.
type CacheKey struct {
	Name    InternedString
	Version InternedString
}

// String implements fmt.Stringer.
func (k CacheKey) String() string {
	if v := k.Version.String(); v != "" {
		return k.Name.String() + "@" + v
	}
	return k.Name.String()
}

// DependencySet is an ordered collection of dependencies, unique by case-insensitive name.
type DependencySet struct {
	items []Dependency
	index map[string]int
}

// NewDependencySet creates a set holding deps. Later duplicates replace earlier ones.
func NewDependencySet(deps ...Dependency) *DependencySet {
	s := &DependencySet{index: make(map[string]int, len(deps))}
	for _, d := range deps {
		s.Put(d)
	}
	return s
}

// Has reports whether the set holds a dependency called name.
func (s *DependencySet) Has(name string) bool {
	_, ok := s.Find(name)
	return ok
}

// Find returns the dependency called name.
func (s *DependencySet) Find(name string) (Dependency, bool) {
	if s == nil {
		return Dependency{}, false
	}
	i, ok := s.index[strings.ToLower(name)]
	if !ok {
		return Dependency{}, false
	}
	return s.items[i], true
}

// Put adds d, replacing any dependency with the same name in place.
func (s *DependencySet) Put(d Dependency) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	key := strings.ToLower(d.Name)
	if i, ok := s.index[key]; ok {
		s.items[i] = d
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, d)
}

// Len returns the number of dependencies in the set.
func (s *DependencySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns the dependencies in insertion order.
func (s *DependencySet) All() []Dependency {
	if s == nil {
		return nil
	}
	out := make([]Dependency, len(s.items))
	copy(out, s.items)
	return out
}
