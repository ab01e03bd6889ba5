package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the Prometheus collector Graft node.
	NodeID graft.ID = "adapter.metrics"
	// RecorderNodeID exposes the same collector as a ports.Metrics.
	RecorderNodeID graft.ID = "adapter.metrics.recorder"
)

func init() {
	graft.Register(graft.Node[*Prometheus]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Prometheus, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Metrics]{
		ID:        RecorderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Metrics, error) {
			p, err := graft.Dep[*Prometheus](ctx)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	})
}
