package app

import (
	"go.trai.ch/nodal/internal/adapters/metrics"
	"go.trai.ch/nodal/internal/adapters/telemetry"
	"go.trai.ch/nodal/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
// Telemetry must be shut down before exit so processors see every span.
type Components struct {
	App       *App
	Logger    ports.Logger
	Metrics   *metrics.Prometheus
	Telemetry *telemetry.Provider
}
