package playback

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/adapters/frames"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/render"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nodal/internal/core/ports"
)

// NodeID is the unique identifier for the player Graft node.
const NodeID graft.ID = "engine.player"

func init() {
	graft.Register(graft.Node[*Player]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			render.NodeID,
			frames.SourceNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.RecorderNodeID,
		},
		Run: func(ctx context.Context) (*Player, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.FrameSource](ctx)
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

			return New(renderer, source, log, tracer, recorder), nil
		},
	})
}
