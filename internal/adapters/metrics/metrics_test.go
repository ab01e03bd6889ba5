package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/metrics"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
)

func TestPrometheus_Counters(t *testing.T) {
	m := metrics.New()

	m.NodeEvaluated(domain.DomainNative)
	m.NodeEvaluated(domain.DomainNative)
	m.NodeEvaluated(domain.DomainManaged)
	m.ObjectBridged(domain.ManagedToNative)
	m.FrameFilesLoaded(3)
	m.GraphicsCleared()

	count, err := testutil.GatherAndCount(m.Registry(), "nodal_node_evaluations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per domain")

	count, err = testutil.GatherAndCount(m.Registry(),
		"nodal_frame_files_loaded_total", "nodal_graphics_cleared_total", "nodal_objects_bridged_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPrometheus_Handler(t *testing.T) {
	m := metrics.New()
	m.ObjectBridged(domain.NativeToManaged)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nodal_objects_bridged_total{direction="native_to_managed"} 1`)
}

func TestDiscard(_ *testing.T) {
	var m ports.Metrics = metrics.Discard{}
	m.NodeEvaluated(domain.DomainManaged)
	m.ObjectBridged(domain.ManagedToNative)
	m.FrameFilesLoaded(1)
	m.GraphicsCleared()
}
