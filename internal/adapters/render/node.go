package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewHeadless(), nil
		},
	})
}
