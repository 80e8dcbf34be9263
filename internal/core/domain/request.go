package domain

// Operation is the intent behind a plan request.
type Operation int

const (
	// OperationInstall adds a dependency, leaving configured ones untouched.
	OperationInstall Operation = iota
	// OperationUpdate moves an existing dependency to a newer version.
	OperationUpdate
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	if o == OperationUpdate {
		return "update"
	}
	return "install"
}

// PlanRequest is a single resolution task. It is passed by value and never mutated.
type PlanRequest struct {
	Dependency Dependency
	Solution   *Solution

	// Project optionally scopes the install to one project of the solution.
	Project string

	Operation Operation

	// ForceUpdates allows updating dependencies that are fixed in the solution.
	ForceUpdates bool
}

// CopyFor derives the request for a transitive dependency. The project scope is
// not inherited; transitive installs reach projects through their parents.
func (r PlanRequest) CopyFor(dep Dependency) PlanRequest {
	return PlanRequest{
		Dependency:   dep,
		Solution:     r.Solution,
		Operation:    r.Operation,
		ForceUpdates: r.ForceUpdates,
	}
}

// UpdatesCurrentDependency reports whether the request updates the solution's dependency.
func (r PlanRequest) UpdatesCurrentDependency() bool {
	return r.Operation == OperationUpdate
}

// InstallToProject reports whether the request targets a specific project.
func (r PlanRequest) InstallToProject() bool {
	return r.Project != ""
}

// ShouldUpdate reports whether the configured dependency may be moved to a new version.
func (r PlanRequest) ShouldUpdate(configured Dependency) bool {
	return r.ForceUpdates || configured.IsFloat()
}
