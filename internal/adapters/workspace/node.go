package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfx/internal/adapters/fs" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/lfx/internal/core/ports"
)

// NodeID is the unique identifier for the workspace detector Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.WorkspaceDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceDetector, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(fsys), nil
		},
	})
}
