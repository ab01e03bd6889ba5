package bridge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/adapters/codec"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/inmem"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/core/ports"
)

// NodeID is the unique identifier for the bridge Graft node.
const NodeID graft.ID = "engine.bridge"

func init() {
	graft.Register(graft.Node[ports.ObjectBridge]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			inmem.ManagedDomainNodeID,
			inmem.NativeDomainNodeID,
			codec.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.ObjectBridge, error) {
			managed, err := graft.Dep[ports.ManagedDomain](ctx)
			if err != nil {
				return nil, err
			}

			native, err := graft.Dep[ports.NativeDomain](ctx)
			if err != nil {
				return nil, err
			}

			converter, err := graft.Dep[ports.Converter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(managed, native, converter, tracer), nil
		},
	})
}
