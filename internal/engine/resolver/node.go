package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfx/internal/adapters/lockfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lfx/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lfx/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.DependencyResolver, error) {
			reader, err := graft.Dep[ports.LockfileReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(reader, log), nil
		},
	})
}
