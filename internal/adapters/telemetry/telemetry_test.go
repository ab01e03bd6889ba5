package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/nodal/internal/adapters/logger"
	"go.trai.ch/nodal/internal/adapters/telemetry"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
}

func TestOTelTracer_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "resolver.require_object",
		ports.WithAttribute("ref", domain.NewOutputRef("a", "out")))
	span.SetAttribute("want_managed", true)
	span.SetAttribute("epoch", 3)
	span.RecordError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "resolver.require_object", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Contains(t, got.Attributes(), attribute.String("ref", "a::out"))
	assert.Contains(t, got.Attributes(), attribute.Bool("want_managed", true))
	assert.Contains(t, got.Attributes(), attribute.Int("epoch", 3))
}

func TestOTelTracer_GlobalProvider(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test-tracer")
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "test-span")
	require.NotNil(t, span)
	span.SetAttribute("key", "value")
	span.RecordError(nil)
	span.End()
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestProvider_LogsEndedSpans(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelDebug)

	p := telemetry.NewProvider(telemetry.NewLogProcessor(log))
	tracer := p.Tracer()

	_, span := tracer.Start(context.Background(), "playback.tick", ports.WithAttribute("frame", 4))
	span.RecordError(errors.New("render failed"))
	span.End()

	out := buf.String()
	assert.Contains(t, out, `msg="span ended"`)
	assert.Contains(t, out, "span=playback.tick")
	assert.Contains(t, out, "frame=4")
	assert.Contains(t, out, "status=error")
	assert.Contains(t, out, `cause="render failed"`)

	require.NoError(t, p.Shutdown(context.Background()))
	buf.Reset()

	_, span = tracer.Start(context.Background(), "playback.tick")
	span.End()
	assert.Empty(t, buf.String(), "spans after shutdown are dropped")
}

func TestLogProcessor_RespectsLogLevel(t *testing.T) {
	var buf bytes.Buffer
	p := telemetry.NewProvider(telemetry.NewLogProcessor(logger.NewWithWriter(&buf, slog.LevelInfo)))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	_, span := p.Tracer().Start(context.Background(), "resolver.apply_node")
	span.End()

	assert.Empty(t, buf.String())
}
