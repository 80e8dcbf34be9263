package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/core/ports"
)

// NodeID is the unique identifier for the restore store Graft node.
const NodeID graft.ID = "adapter.restore_store"

func init() {
	graft.Register(graft.Node[ports.RestoreStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RestoreStore, error) {
			return NewStore(), nil
		},
	})
}
