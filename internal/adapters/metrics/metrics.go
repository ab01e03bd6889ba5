// Package metrics implements ports.Metrics with Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus records resolver and playback counters in its own registry.
type Prometheus struct {
	registry        *prometheus.Registry
	evaluations     *prometheus.CounterVec
	bridged         *prometheus.CounterVec
	filesLoaded     prometheus.Counter
	graphicsCleared prometheus.Counter
}

// New creates the counters and registers them in a fresh registry.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodal_node_evaluations_total",
				Help: "Total number of node evaluations by domain",
			},
			[]string{"domain"},
		),
		bridged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodal_objects_bridged_total",
				Help: "Total number of objects copied across domains",
			},
			[]string{"direction"},
		),
		filesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nodal_frame_files_loaded_total",
			Help: "Total number of frame files handed to the rendering core",
		}),
		graphicsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nodal_graphics_cleared_total",
			Help: "Total number of full graphics purges",
		}),
	}
	p.registry.MustRegister(p.evaluations, p.bridged, p.filesLoaded, p.graphicsCleared)
	return p
}

// Registry exposes the underlying registry for scraping and tests.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// NodeEvaluated implements ports.Metrics.
func (p *Prometheus) NodeEvaluated(d domain.Domain) {
	p.evaluations.WithLabelValues(d.String()).Inc()
}

// ObjectBridged implements ports.Metrics.
func (p *Prometheus) ObjectBridged(dir domain.BridgeDirection) {
	p.bridged.WithLabelValues(dir.String()).Inc()
}

// FrameFilesLoaded implements ports.Metrics.
func (p *Prometheus) FrameFilesLoaded(n int) {
	p.filesLoaded.Add(float64(n))
}

// GraphicsCleared implements ports.Metrics.
func (p *Prometheus) GraphicsCleared() {
	p.graphicsCleared.Inc()
}

// Discard is a ports.Metrics that records nothing.
type Discard struct{}

// NodeEvaluated does nothing.
func (Discard) NodeEvaluated(domain.Domain) {}

// ObjectBridged does nothing.
func (Discard) ObjectBridged(domain.BridgeDirection) {}

// FrameFilesLoaded does nothing.
func (Discard) FrameFilesLoaded(int) {}

// GraphicsCleared does nothing.
func (Discard) GraphicsCleared() {}
