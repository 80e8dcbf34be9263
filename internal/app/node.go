package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/nuget"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/ripple/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			planner.NodeID,
			nuget.NodeID,
			logger.NodeID,
			progress.NodeID,
			store.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			logger.ConcreteNodeID,
			progress.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SolutionLoader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.PlanBuilder](ctx)
	if err != nil {
		return nil, err
	}

	feeds, err := graft.Dep[ports.FeedService](ctx)
	if err != nil {
		return nil, err
	}

	restores, err := graft.Dep[ports.RestoreStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, builder, feeds, restores, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	console, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, console, telemetry), nil
}
