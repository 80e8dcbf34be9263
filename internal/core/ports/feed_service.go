package ports

import (
	"context"

	"go.trai.ch/ripple/internal/core/domain"
)

// FeedService answers version and dependency questions across a solution's feeds.
//
//go:generate go run go.uber.org/mock/mockgen -source=feed_service.go -destination=mocks/mock_feed_service.go -package=mocks
type FeedService interface {
	// NugetFor resolves dep to a concrete archive. A dependency without a
	// version resolves to the latest version admitted by its stability policy.
	NugetFor(ctx context.Context, solution *domain.Solution, dep domain.Dependency) (NugetFile, error)

	// DependenciesFor returns the dependencies declared by the package dep resolves to.
	// In float mode the returned dependencies carry no version.
	DependenciesFor(
		ctx context.Context, solution *domain.Solution, dep domain.Dependency, mode domain.UpdateMode,
	) ([]domain.Dependency, error)

	// Latest returns the latest version of every package in the solution's floating feeds.
	Latest(ctx context.Context, solution *domain.Solution) ([]domain.PackageIdentity, error)
}
