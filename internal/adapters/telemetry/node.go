package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/nodal/internal/adapters/logger"
	"go.trai.ch/nodal/internal/core/ports"
)

const (
	// ProviderNodeID is the unique identifier for the tracer provider Graft node.
	ProviderNodeID graft.ID = "adapter.telemetry.provider"
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			p := NewProvider(NewLogProcessor(log))
			// Register it as the global provider.
			otel.SetTracerProvider(p.tp)
			return p, nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			p, err := graft.Dep[*Provider](ctx)
			if err != nil {
				return nil, err
			}
			return p.Tracer(), nil
		},
	})
}
