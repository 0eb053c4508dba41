package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the graft node providing the host FileSystem.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (FileSystem, error) {
			return NewOSFS(), nil
		},
	})
}
