// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nodal/internal/adapters/codec"
	_ "go.trai.ch/nodal/internal/adapters/config"
	_ "go.trai.ch/nodal/internal/adapters/frames"
	_ "go.trai.ch/nodal/internal/adapters/inmem"
	_ "go.trai.ch/nodal/internal/adapters/logger"
	_ "go.trai.ch/nodal/internal/adapters/metrics"
	_ "go.trai.ch/nodal/internal/adapters/render"
	_ "go.trai.ch/nodal/internal/adapters/store"
	_ "go.trai.ch/nodal/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/nodal/internal/app"
	_ "go.trai.ch/nodal/internal/engine/bridge"
	_ "go.trai.ch/nodal/internal/engine/playback"
	_ "go.trai.ch/nodal/internal/engine/resolver"
)
