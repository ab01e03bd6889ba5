package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/core/ports"
)

// NodeID is the unique identifier for the status store Graft node.
const NodeID graft.ID = "adapter.status_store"

func init() {
	graft.Register(graft.Node[ports.StatusStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatusStore, error) {
			return NewStore(DefaultPath), nil
		},
	})
}
