package domain

import (
	"fmt"
	"slices"
	"strings"
)

// StepKind identifies what a plan step does.
type StepKind int

const (
	// StepInstallSolutionDependency adds a dependency to the solution.
	StepInstallSolutionDependency StepKind = iota
	// StepUpdateDependency moves a solution dependency to a new version.
	StepUpdateDependency
	// StepInstallProjectDependency adds a dependency to one project.
	StepInstallProjectDependency
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepUpdateDependency:
		return "update"
	case StepInstallProjectDependency:
		return "install-project"
	default:
		return "install"
	}
}

// Step is one action of a plan. Applying it is the caller's concern.
type Step struct {
	Kind       StepKind
	Project    string
	Dependency Dependency
}

// InstallSolutionDependency creates a step adding dep to the solution.
func InstallSolutionDependency(dep Dependency) Step {
	return Step{Kind: StepInstallSolutionDependency, Dependency: dep}
}

// UpdateDependency creates a step updating dep in the solution.
func UpdateDependency(dep Dependency) Step {
	return Step{Kind: StepUpdateDependency, Dependency: dep}
}

// InstallProjectDependency creates a step adding dep to the named project.
func InstallProjectDependency(project string, dep Dependency) Step {
	return Step{Kind: StepInstallProjectDependency, Project: project, Dependency: dep}
}

// key identifies the target of the step. Two steps with the same key are duplicates.
func (s Step) key() string {
	return s.Kind.String() + "\x00" + strings.ToLower(s.Project) + "\x00" + strings.ToLower(s.Dependency.Name)
}

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s.Kind {
	case StepUpdateDependency:
		return fmt.Sprintf("Update %s", s.Dependency)
	case StepInstallProjectDependency:
		return fmt.Sprintf("Install %s to project %s", s.Dependency, s.Project)
	default:
		return fmt.Sprintf("Install %s to solution", s.Dependency)
	}
}

// Plan is an ordered, de-duplicated sequence of steps.
type Plan struct {
	steps []Step
	seen  map[string]struct{}
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{seen: make(map[string]struct{})}
}

// AddStep appends s unless a step for the same target is already present.
// It reports whether the step was added.
func (p *Plan) AddStep(s Step) bool {
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	k := s.key()
	if _, ok := p.seen[k]; ok {
		return false
	}
	p.seen[k] = struct{}{}
	p.steps = append(p.steps, s)
	return true
}

// Import merges the steps of child into p in order, skipping duplicates.
func (p *Plan) Import(child *Plan) {
	if child == nil || child == p {
		return
	}
	for _, s := range child.steps {
		p.AddStep(s)
	}
}

// Steps returns a copy of the plan's steps in discovery order.
func (p *Plan) Steps() []Step {
	return slices.Clone(p.steps)
}

// Len returns the number of steps.
func (p *Plan) Len() int {
	return len(p.steps)
}

// IsEmpty reports whether the plan has no steps.
func (p *Plan) IsEmpty() bool {
	return len(p.steps) == 0
}
