package app

import (
	"go.trai.ch/ripple/internal/core/domain"
)

// applyPlan records the plan's steps in the solution.
func applyPlan(solution *domain.Solution, plan *domain.Plan) error {
	for _, step := range plan.Steps() {
		switch step.Kind {
		case domain.StepInstallSolutionDependency:
			solution.Dependencies.Put(step.Dependency)

		case domain.StepUpdateDependency:
			dep := step.Dependency
			if configured, ok := solution.Dependencies.Find(dep.Name); ok {
				// Keep the configured mode and stability.
				dep = configured.WithVersion(dep.Version)
			}
			solution.Dependencies.Put(dep)

		case domain.StepInstallProjectDependency:
			project, err := solution.FindProject(step.Project)
			if err != nil {
				return err
			}
			project.Dependencies.Put(step.Dependency)
		}
	}
	return nil
}
