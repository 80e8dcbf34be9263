package ports

import (
	"context"

	"go.trai.ch/ripple/internal/core/domain"
)

// PlanBuilder computes the steps that satisfy a plan request.
//
//go:generate go run go.uber.org/mock/mockgen -source=planner.go -destination=mocks/mock_planner.go -package=mocks
type PlanBuilder interface {
	// PlanFor resolves the request's dependency and its transitive dependencies.
	PlanFor(ctx context.Context, request domain.PlanRequest) (*domain.Plan, error)
}
