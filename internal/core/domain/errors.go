// Package domain holds the package, dependency, solution and plan model of ripple.
package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedIdentity is returned when an archive filename does not split into a name and a version.
	ErrMalformedIdentity = zerr.New("malformed package identity")

	// ErrInvalidVersion is returned when a version string does not follow the semantic version grammar.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrPackageNotFound is returned when no package survives feed filtering or an exact lookup misses.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrFixedDependency is reported when an update targets a dependency pinned in the solution.
	// It is logged as a warning and never returned from planning.
	ErrFixedDependency = zerr.New("dependency is fixed")

	// ErrProjectNotFound is returned when a request names a project the solution does not contain.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrUnsafeArchiveEntry is returned when an archive entry would be written outside its destination.
	ErrUnsafeArchiveEntry = zerr.New("archive entry escapes destination")

	// ErrInvalidSolution is returned when a solution file violates its schema.
	ErrInvalidSolution = zerr.New("invalid solution")

	// ErrConfigNotFound is returned when no solution file exists in the directory or any parent.
	ErrConfigNotFound = zerr.New("solution file not found")

	// ErrConfigReadFailed is returned when the solution file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read solution file")

	// ErrConfigParseFailed is returned when the solution file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse solution file")

	// ErrNoTargetSpecified is returned when a plan is requested without a target package.
	ErrNoTargetSpecified = zerr.New("no target package specified")
)
