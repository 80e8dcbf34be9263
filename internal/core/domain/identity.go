package domain

import (
	"fmt"
	"unicode"

	"go.trai.ch/zerr"
)

// PackageIdentity is the canonical (name, version) pair of a package archive.
type PackageIdentity struct {
	Name    string
	Version Version
}

// scanState is the state of the identity scanner.
type scanState int

const (
	// stateInName means the last rune seen was part of the name.
	stateInName scanState = iota
	// stateAfterPeriod means the last rune seen was a period.
	stateAfterPeriod
)

// ParseIdentity splits an archive filename (without extension) into a name and a version.
//
// The split point is the first digit that immediately follows a period, so periods
// inside the name ("Foo.Bar.1.0.0") never split it. The name is everything before
// that period and the version everything from the digit on.
func ParseIdentity(input string) (PackageIdentity, error) {
	split := splitIndex(input)
	if split < 0 {
		return PackageIdentity{}, zerr.With(zerr.Wrap(ErrMalformedIdentity, "no numeric version segment"), "input", input)
	}

	name := input[:split-1]
	if name == "" {
		return PackageIdentity{}, zerr.With(zerr.Wrap(ErrMalformedIdentity, "empty package name"), "input", input)
	}

	version, err := ParseVersion(input[split:])
	if err != nil {
		return PackageIdentity{}, zerr.With(zerr.With(zerr.Wrap(ErrMalformedIdentity, "invalid version segment"), "input", input), "version", input[split:])
	}

	return PackageIdentity{Name: name, Version: version}, nil
}

// splitIndex returns the byte offset of the first digit that follows a period, or -1.
func splitIndex(input string) int {
	state := stateInName
	for i, r := range input {
		switch {
		case r == '.':
			state = stateAfterPeriod
		case unicode.IsDigit(r) && state == stateAfterPeriod:
			return i
		default:
			state = stateInName
		}
	}
	return -1
}

// IsPreRelease reports whether the package version carries a pre-release label.
func (p PackageIdentity) IsPreRelease() bool {
	return p.Version.IsPreRelease()
}

// FileStem returns the "Name.Version" stem used for archive filenames and classic layouts.
func (p PackageIdentity) FileStem() string {
	return p.Name + "." + p.Version.String()
}

// String implements fmt.Stringer.
func (p PackageIdentity) String() string {
	return fmt.Sprintf("Name: %s, Version: %s, IsPreRelease: %t", p.Name, p.Version, p.IsPreRelease())
}
