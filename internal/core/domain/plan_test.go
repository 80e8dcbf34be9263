package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/core/domain"
)

func TestPlan_AddStepDeduplicates(t *testing.T) {
	p := domain.NewPlan()

	assert.True(t, p.AddStep(domain.InstallSolutionDependency(domain.NewDependency("Foo", "1.0.0.0"))))
	assert.False(t, p.AddStep(domain.InstallSolutionDependency(domain.NewDependency("foo", "2.0.0.0"))))
	assert.True(t, p.AddStep(domain.UpdateDependency(domain.NewDependency("Foo", "2.0.0.0"))))
	assert.True(t, p.AddStep(domain.InstallProjectDependency("Core", domain.FloatFor("Foo"))))
	assert.True(t, p.AddStep(domain.InstallProjectDependency("Web", domain.FloatFor("Foo"))))

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "1.0.0.0", p.Steps()[0].Dependency.Version, "first writer wins")
}

func TestPlan_Import(t *testing.T) {
	parent := domain.NewPlan()
	parent.AddStep(domain.InstallSolutionDependency(domain.NewDependency("A", "1.0.0.0")))

	child := domain.NewPlan()
	child.AddStep(domain.InstallSolutionDependency(domain.NewDependency("B", "1.0.0.0")))
	child.AddStep(domain.InstallSolutionDependency(domain.NewDependency("a", "1.0.0.0")))

	parent.Import(child)
	parent.Import(child)
	parent.Import(parent)
	parent.Import(nil)

	steps := parent.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "A", steps[0].Dependency.Name)
	assert.Equal(t, "B", steps[1].Dependency.Name)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "Install Foo,1.0.0.0 to solution",
		domain.InstallSolutionDependency(domain.NewDependency("Foo", "1.0.0.0")).String())
	assert.Equal(t, "Update Foo,2.0.0.0",
		domain.UpdateDependency(domain.NewDependency("Foo", "2.0.0.0")).String())
	assert.Equal(t, "Install Foo to project Core",
		domain.InstallProjectDependency("Core", domain.FloatFor("Foo")).String())
}

func TestPlanRequest(t *testing.T) {
	sol := domain.NewSolution("Test")
	req := domain.PlanRequest{
		Dependency:   domain.FloatFor("Foo"),
		Solution:     sol,
		Project:      "Core",
		Operation:    domain.OperationUpdate,
		ForceUpdates: true,
	}

	child := req.CopyFor(domain.FloatFor("Bar"))
	assert.Equal(t, "Bar", child.Dependency.Name)
	assert.Same(t, sol, child.Solution)
	assert.True(t, child.UpdatesCurrentDependency())
	assert.True(t, child.ForceUpdates)
	assert.False(t, child.InstallToProject())
	assert.True(t, req.InstallToProject())

	assert.True(t, req.ShouldUpdate(domain.NewDependency("Foo", "1.0.0.0")))

	req.ForceUpdates = false
	assert.False(t, req.ShouldUpdate(domain.NewDependency("Foo", "1.0.0.0")))
	assert.True(t, req.ShouldUpdate(domain.FloatFor("Foo")))
}

func TestSolution_Projects(t *testing.T) {
	sol := domain.NewSolution("Test")
	sol.AddProject(domain.NewProject("Core", domain.FloatFor("FubuCore")))
	sol.AddProject(domain.NewProject("Web", domain.FloatFor("fubucore"), domain.FloatFor("Bottles")))
	sol.AddProject(domain.NewProject("Tests"))

	p, err := sol.FindProject("web")
	require.NoError(t, err)
	assert.Equal(t, "Web", p.Name)

	_, err = sol.FindProject("Missing")
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))

	var names []string
	for p := range sol.ProjectsDependingOn("FUBUCORE") {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Core", "Web"}, names)
}

func TestRestoreRecord_Matches(t *testing.T) {
	id := domain.PackageIdentity{Name: "FubuCore", Version: domain.MustParseVersion("1.0.0.0")}
	rec := &domain.RestoreRecord{Name: "FubuCore", Version: "1.0", Checksum: "abc"}

	assert.True(t, rec.Matches(id, "abc"))
	assert.False(t, rec.Matches(id, "abd"))

	newer := domain.PackageIdentity{Name: "FubuCore", Version: domain.MustParseVersion("1.0.0.1")}
	assert.False(t, rec.Matches(newer, "abc"))

	var none *domain.RestoreRecord
	assert.False(t, none.Matches(id, "abc"))
}
