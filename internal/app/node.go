package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/adapters/frames"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/adapters/inmem"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/nodal/internal/engine/bridge"
	"go.trai.ch/nodal/internal/engine/playback"
	"go.trai.ch/nodal/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			inmem.ManagedDomainNodeID,
			bridge.NodeID,
			playback.NodeID,
			frames.SourceNodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			metrics.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[*metrics.Prometheus](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       a,
				Logger:    log,
				Metrics:   collector,
				Telemetry: provider,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.GraphLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	managed, err := graft.Dep[ports.ManagedDomain](ctx)
	if err != nil {
		return nil, err
	}

	objBridge, err := graft.Dep[ports.ObjectBridge](ctx)
	if err != nil {
		return nil, err
	}

	player, err := graft.Dep[*playback.Player](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.FrameSource](ctx)
	if err != nil {
		return nil, err
	}

	statusStore, err := graft.Dep[ports.StatusStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, res, managed, objBridge, player, source, statusStore, log), nil
}
