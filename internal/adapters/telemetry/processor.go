package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/nodal/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)

// LogProcessor implements sdktrace.SpanProcessor by writing every ended span to a
// ports.Logger at debug level.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a LogProcessor writing to logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart is called when a span starts.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration, its attributes and a failed status.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	args := []any{"span", s.Name(), "duration", s.EndTime().Sub(s.StartTime())}
	for _, kv := range s.Attributes() {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}
	if status := s.Status(); status.Code == codes.Error {
		args = append(args, "status", "error", "cause", status.Description)
	}
	p.logger.Debug("span ended", args...)
}

// Shutdown is called when the SDK shuts down.
func (p *LogProcessor) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush exports all ended spans that have not yet been exported.
func (p *LogProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Provider owns the SDK tracer provider behind the module's tracers.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a tracer provider feeding every span to processors.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, sp := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(sp))
	}
	return &Provider{tp: sdktrace.NewTracerProvider(opts...)}
}

// Tracer returns a ports.Tracer backed by the provider.
func (p *Provider) Tracer() *OTelTracer {
	return NewOTelTracerWithProvider(p.tp, InstrumentationName)
}

// Shutdown flushes and stops every processor. Spans started afterwards are dropped.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
