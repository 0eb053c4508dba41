package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfx/internal/adapters/fs"     //nolint:depguard // Wired in adapter layer
	"go.trai.ch/lfx/internal/adapters/logger" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/lfx/internal/core/ports"
)

const (
	// NodeID is the graft node providing the lockfile reader.
	NodeID graft.ID = "adapter.lockfile"
	// EncoderNodeID is the graft node providing the lockfile encoder.
	EncoderNodeID graft.ID = "adapter.lockfile.encoder"
)

func init() {
	graft.Register(graft.Node[ports.LockfileReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LockfileReader, error) {
			return newReader(ctx)
		},
	})

	graft.Register(graft.Node[ports.LockfileEncoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LockfileEncoder, error) {
			return newReader(ctx)
		},
	})
}

func newReader(ctx context.Context) (*Reader, error) {
	fsys, err := graft.Dep[fs.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewReader(fsys, log), nil
}
