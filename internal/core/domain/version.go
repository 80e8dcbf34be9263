package domain

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// versionPattern accepts major.minor[.patch[.revision]][-special].
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-([A-Za-z][0-9A-Za-z-]*))?$`)

// Version is a package version in the four-part form used by package archives,
// optionally carrying a pre-release label.
//
// The major.minor.patch core and the label are held as a semver.Version so that
// pre-release precedence follows semantic versioning; the fourth (revision)
// segment is compared between the core and the label.
type Version struct {
	core     *semver.Version
	revision uint64
	special  string
	original string
}

// ParseVersion parses s into a Version.
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "version does not match major.minor[.patch[.revision]][-label]"), "version", s)
	}

	var parts [4]uint64
	for i := range parts {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "version segment out of range"), "version", s)
		}
		parts[i] = n
	}

	special := m[5]
	return Version{
		core:     semver.New(parts[0], parts[1], parts[2], strings.ToLower(special), ""),
		revision: parts[3],
		special:  special,
		original: strings.TrimSpace(s),
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for tests and constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v.core == nil
}

// Special returns the pre-release label without the leading dash.
func (v Version) Special() string {
	return v.special
}

// IsPreRelease reports whether the version carries a pre-release label.
func (v Version) IsPreRelease() bool {
	return v.special != ""
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to, or after o.
// Numeric segments compare numerically and a labelled version sorts below the
// same numbers without a label. Labels compare case-insensitively.
func (v Version) Compare(o Version) int {
	a, b := v.semver(), o.semver()
	if c := cmp.Compare(a.Major(), b.Major()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor(), b.Minor()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Patch(), b.Patch()); c != 0 {
		return c
	}
	if c := cmp.Compare(v.revision, o.revision); c != 0 {
		return c
	}
	// Numbers are equal, so this only weighs the pre-release labels.
	return a.Compare(b)
}

// Equal reports whether v and o denote the same version.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// String returns the version as it was written.
func (v Version) String() string {
	return v.original
}

func (v Version) semver() *semver.Version {
	if v.core == nil {
		return semver.New(0, 0, 0, "", "")
	}
	return v.core
}
