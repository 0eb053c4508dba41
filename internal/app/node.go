package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfx/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/lfx/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lfx/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/lfx/internal/engine/resolver"
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
			workspace.NodeID,
			resolver.NodeID,
			lockfile.EncoderNodeID,
			logger.NodeID,
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
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	detector, err := graft.Dep[ports.WorkspaceDetector](ctx)
	if err != nil {
		return nil, err
	}

	deps, err := graft.Dep[ports.DependencyResolver](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.LockfileEncoder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(detector, deps, encoder, log), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
