// Package planner implements the dependency resolution engine.
package planner

import (
	"context"
	"fmt"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

// UnitStatus is the resolution state of one package within a planning run.
type UnitStatus string

const (
	// StatusUnvisited indicates the unit has not been reached yet.
	StatusUnvisited UnitStatus = "Unvisited"
	// StatusInProgress indicates the unit is being resolved further up the call stack.
	StatusInProgress UnitStatus = "InProgress"
	// StatusDone indicates the unit and its dependencies are fully resolved.
	StatusDone UnitStatus = "Done"
)

var _ ports.PlanBuilder = (*Builder)(nil)

// Builder computes installation plans by walking the dependency graph exposed by the feeds.
type Builder struct {
	feeds  ports.FeedService
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(feeds ports.FeedService, logger ports.Logger) *Builder {
	return &Builder{feeds: feeds, logger: logger}
}

// PlanFor resolves the request's dependency and everything it depends on.
// Each package is resolved at most once per call, so cycles terminate.
func (b *Builder) PlanFor(ctx context.Context, request domain.PlanRequest) (*domain.Plan, error) {
	if request.Solution == nil {
		return nil, zerr.Wrap(domain.ErrInvalidSolution, "plan request has no solution")
	}
	if request.Dependency.Name == "" {
		return nil, domain.ErrNoTargetSpecified
	}

	w := &walk{
		ctx:    ctx,
		feeds:  b.feeds,
		logger: b.logger,
		units:  make(map[domain.CacheKey]*unit),
	}
	return w.visit(request, nil)
}

// unit is the arena entry of one resolution unit.
type unit struct {
	status UnitStatus
	plan   *domain.Plan
}

// walk holds the state of a single PlanFor call.
type walk struct {
	ctx    context.Context
	feeds  ports.FeedService
	logger ports.Logger
	units  map[domain.CacheKey]*unit
}

func (w *walk) status(key domain.CacheKey) UnitStatus {
	if u, ok := w.units[key]; ok {
		return u.status
	}
	return StatusUnvisited
}

// visit resolves one request. parent is the dependency that led here, nil for the root.
func (w *walk) visit(request domain.PlanRequest, parent *domain.Dependency) (*domain.Plan, error) {
	key := request.Dependency.Key()

	switch w.status(key) {
	case StatusDone:
		return w.units[key].plan, nil
	case StatusInProgress:
		// A cycle. The partial plan is all that is known so far.
		return w.units[key].plan, nil
	case StatusUnvisited:
	}

	u := &unit{status: StatusInProgress, plan: domain.NewPlan()}
	w.units[key] = u

	if err := w.ctx.Err(); err != nil {
		return nil, err
	}

	target, err := w.resolve(request)
	if err != nil {
		return nil, err
	}
	request.Dependency = target

	w.logger.Info("* Analyzing " + target.String())

	if request.UpdatesCurrentDependency() {
		w.updateDependency(u.plan, request)
	} else if !request.Solution.Dependencies.Has(target.Name) {
		u.plan.AddStep(domain.InstallSolutionDependency(target))
	}

	if err := w.projectInstallations(u.plan, request, parent); err != nil {
		return nil, err
	}

	children, err := w.feeds.DependenciesFor(w.ctx, request.Solution, target, target.Mode)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read dependencies"), "parent", target.String())
	}

	for _, child := range children {
		childPlan, err := w.visit(request.CopyFor(child), &target)
		if err != nil {
			return nil, err
		}
		u.plan.Import(childPlan)
	}

	u.status = StatusDone
	return u.plan, nil
}

// resolve returns the request's dependency with a concrete version.
func (w *walk) resolve(request domain.PlanRequest) (domain.Dependency, error) {
	target := request.Dependency
	if target.HasVersion() {
		return target, nil
	}

	remote, err := w.feeds.NugetFor(w.ctx, request.Solution, target)
	if err != nil {
		return domain.Dependency{}, err
	}
	return target.WithVersion(remote.Identity().Version.String()), nil
}

// updateDependency emits an update step unless the configured dependency is fixed.
func (w *walk) updateDependency(plan *domain.Plan, request domain.PlanRequest) {
	target := request.Dependency

	configured, ok := request.Solution.Dependencies.Find(target.Name)
	if !ok {
		plan.AddStep(domain.InstallSolutionDependency(target))
		return
	}

	if !request.ShouldUpdate(configured) {
		w.logger.Warn(fmt.Sprintf(
			"%v: this operation requires %s to be updated to %s but it is marked as fixed, use the force option to update it",
			domain.ErrFixedDependency, target.Name, target.Version,
		))
		return
	}

	plan.AddStep(domain.UpdateDependency(target))
}

// projectInstallations installs the target into the requested project and into every
// project that depends on the parent. The root call has no parent and skips the latter.
func (w *walk) projectInstallations(plan *domain.Plan, request domain.PlanRequest, parent *domain.Dependency) error {
	target := request.Dependency
	solution := request.Solution

	if request.InstallToProject() {
		project, err := solution.FindProject(request.Project)
		if err != nil {
			return err
		}
		installToProject(plan, project, target)
	}

	if parent == nil {
		return nil
	}

	for project := range solution.ProjectsDependingOn(parent.Name) {
		installToProject(plan, project, target)
	}
	return nil
}

func installToProject(plan *domain.Plan, project *domain.Project, target domain.Dependency) {
	if !project.Dependencies.Has(target.Name) {
		plan.AddStep(domain.InstallProjectDependency(project.Name, domain.FloatFor(target.Name)))
	}
}
