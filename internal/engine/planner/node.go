package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ripple/internal/adapters/nuget"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ripple/internal/core/ports"
)

// NodeID is the unique identifier for the plan builder Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[ports.PlanBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nuget.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.PlanBuilder, error) {
			feeds, err := graft.Dep[ports.FeedService](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(feeds, log), nil
		},
	})
}
