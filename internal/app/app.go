// Package app implements the application layer for ripple.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.SolutionLoader
	planner   ports.PlanBuilder
	feeds     ports.FeedService
	restores  ports.RestoreStore
	logger    ports.Logger
	telemetry ports.Telemetry

	parallelism int
}

// New creates a new App instance.
func New(
	loader ports.SolutionLoader,
	planner ports.PlanBuilder,
	feeds ports.FeedService,
	restores ports.RestoreStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:      loader,
		planner:     planner,
		feeds:       feeds,
		restores:    restores,
		logger:      logger,
		telemetry:   telemetry,
		parallelism: runtime.NumCPU(),
	}
}

// WithParallelism limits how many packages Restore explodes at once.
func (a *App) WithParallelism(n int) *App {
	if n > 0 {
		a.parallelism = n
	}
	return a
}

// PlanOptions holds the options for Plan.
type PlanOptions struct {
	// ConfigPath is the solution file, or a directory to search upwards from.
	ConfigPath string

	Package string
	Version string

	// Project optionally scopes the install to one project.
	Project string

	// Update requests an update of the configured dependency instead of an install.
	Update bool

	// Force allows updating dependencies that are fixed in the solution.
	Force bool

	// Float records the dependency as floating rather than fixed.
	Float bool

	// PreRelease admits pre-release versions when resolving the latest version.
	PreRelease bool

	// Apply writes the plan's steps back to the solution file.
	Apply bool
}

// Plan computes the steps needed to install or update a package and optionally applies them.
func (a *App) Plan(ctx context.Context, opts PlanOptions) (*domain.Plan, error) {
	if opts.Package == "" {
		return nil, domain.ErrNoTargetSpecified
	}

	solution, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load solution")
	}

	request := domain.PlanRequest{
		Dependency:   newTarget(opts),
		Solution:     solution,
		Project:      opts.Project,
		Operation:    domain.OperationInstall,
		ForceUpdates: opts.Force,
	}
	if opts.Update {
		request.Operation = domain.OperationUpdate
	}

	plan, err := a.planner.PlanFor(ctx, request)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to plan"), "package", opts.Package)
	}

	if !opts.Apply || plan.IsEmpty() {
		return plan, nil
	}

	if err := applyPlan(solution, plan); err != nil {
		return nil, err
	}
	if err := a.loader.Save(solution.File, solution); err != nil {
		return nil, zerr.Wrap(err, "failed to save solution")
	}
	a.logger.Info(fmt.Sprintf("Applied %d steps to %s", plan.Len(), solution.File))

	return plan, nil
}

func newTarget(opts PlanOptions) domain.Dependency {
	target := domain.NewDependency(opts.Package, opts.Version)
	if opts.Float {
		target.Mode = domain.ModeFloat
	}
	if opts.PreRelease {
		target.Stability = domain.StabilityAnything
	}
	return target
}

// RestoredPackage describes a package placed into the packages directory.
type RestoredPackage struct {
	Identity  domain.PackageIdentity
	Directory string
	Checksum  string

	// Cached is set when the package directory already held this archive.
	Cached bool
}

// RestoreOptions holds the options for Restore.
type RestoreOptions struct {
	// ConfigPath is the solution file, or a directory to search upwards from.
	ConfigPath string

	// Force explodes every package even when its directory is up to date.
	Force bool
}

// Restore places every solution dependency into the solution's packages directory.
func (a *App) Restore(ctx context.Context, opts RestoreOptions) ([]RestoredPackage, error) {
	solution, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load solution")
	}

	staging, err := os.MkdirTemp("", "ripple-restore-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup

	deps := solution.Dependencies.All()
	restored := make([]RestoredPackage, len(deps))
	root := solution.PackagesPath()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)
	for i, dep := range deps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			vertex := a.telemetry.Record(gctx, "restore "+dep.Name)
			pkg, err := a.restore(gctx, solution, dep, staging, root, opts.Force)
			if err == nil && pkg.Cached {
				vertex.Cached()
			}
			vertex.Complete(err)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to restore package"), "package", dep.Name)
			}
			restored[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "restore failed")
	}

	return restored, nil
}

// restore copies the resolved archive out of its feed, then explodes the copy so
// the feed keeps its archive. Packages whose directory already holds the same
// archive are left alone unless force is set.
func (a *App) restore(
	ctx context.Context,
	solution *domain.Solution,
	dep domain.Dependency,
	staging, root string,
	force bool,
) (RestoredPackage, error) {
	file, err := a.feeds.NugetFor(ctx, solution, dep)
	if err != nil {
		return RestoredPackage{}, err
	}

	sum, err := file.Checksum()
	if err != nil {
		return RestoredPackage{}, err
	}

	if !force {
		rec, err := a.restores.Get(root, dep.Name)
		if err != nil {
			return RestoredPackage{}, err
		}
		if rec.Matches(file.Identity(), sum) {
			a.logger.Info(fmt.Sprintf("Up to date %s", file.Identity().FileStem()))
			return RestoredPackage{Identity: file.Identity(), Directory: rec.Directory, Checksum: sum, Cached: true}, nil
		}
	}

	copied, err := file.CopyTo(staging)
	if err != nil {
		return RestoredPackage{}, err
	}

	placed, err := copied.ExplodeTo(root)
	if err != nil {
		return RestoredPackage{}, err
	}

	pkg := RestoredPackage{
		Identity:  placed.Identity(),
		Directory: placed.ExplodedDirectory(root),
		Checksum:  sum,
	}
	err = a.restores.Put(root, domain.RestoreRecord{
		Name:      pkg.Identity.Name,
		Version:   pkg.Identity.Version.String(),
		Checksum:  sum,
		Directory: pkg.Directory,
		Timestamp: time.Now(),
	})
	if err != nil {
		return RestoredPackage{}, err
	}

	a.logger.Info(fmt.Sprintf("Restored %s to %s (xxh64 %s)", pkg.Identity.FileStem(), pkg.Directory, sum))
	return pkg, nil
}

// Latest lists the latest version of every package in the solution's floating feeds.
func (a *App) Latest(ctx context.Context, configPath string) ([]domain.PackageIdentity, error) {
	solution, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load solution")
	}

	latest, err := a.feeds.Latest(ctx, solution)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query feeds")
	}
	return latest, nil
}
