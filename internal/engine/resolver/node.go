package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/adapters/inmem"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/nodal/internal/engine/bridge"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			inmem.ManagedDomainNodeID,
			inmem.NativeDomainNodeID,
			bridge.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.RecorderNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			managed, err := graft.Dep[ports.ManagedDomain](ctx)
			if err != nil {
				return nil, err
			}

			native, err := graft.Dep[ports.NativeDomain](ctx)
			if err != nil {
				return nil, err
			}

			objBridge, err := graft.Dep[ports.ObjectBridge](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return New(managed, native, objBridge, log, tracer, recorder), nil
		},
	})
}
