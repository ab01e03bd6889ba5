package render_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/render"
	"go.trai.ch/nodal/internal/core/domain"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func writeFile(t *testing.T, dir, name string) domain.FrameFile {
	t.Helper()
	path := filepath.Join(dir, name+".obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))
	return domain.FrameFile{Name: name, Ext: "obj", Path: path}
}

func TestHeadless_GarbageCollectKeepsNearestFrames(t *testing.T) {
	h := render.NewHeadless()
	file := writeFile(t, t.TempDir(), "mesh")

	for id := range 6 {
		require.NoError(t, h.LoadFile(file, id))
	}
	h.SetCurrentFrameID(3)
	h.GarbageCollectFrames(3)

	assert.Equal(t, []int{2, 3, 4}, h.Cached())

	h.GarbageCollectFrames(0)
	assert.Empty(t, h.Cached())
}

func TestHeadless_ClearGraphics(t *testing.T) {
	h := render.NewHeadless()
	require.NoError(t, h.LoadFile(writeFile(t, t.TempDir(), "mesh"), 0))

	h.ClearGraphics()
	assert.Empty(t, h.Cached())
}

func TestHeadless_LoadMissingFile(t *testing.T) {
	h := render.NewHeadless()
	err := h.LoadFile(domain.FrameFile{Name: "gone", Ext: "obj", Path: filepath.Join(t.TempDir(), "gone.obj")}, 0)
	require.Error(t, err)
	assert.Empty(t, h.Cached())
}

func TestHeadless_RenderRequiresInitialize(t *testing.T) {
	h := render.NewHeadless()
	assert.ErrorIs(t, h.RenderFrame(), render.ErrNotInitialized)

	require.NoError(t, h.Initialize())
	require.NoError(t, h.RenderFrame())
	assert.Equal(t, 1, h.Rendered())
}

func TestHeadless_Rates(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	h := render.NewHeadlessWithClock(c.now)
	require.NoError(t, h.Initialize())
	file := writeFile(t, t.TempDir(), "mesh")

	require.NoError(t, h.RenderFrame())
	c.advance(50 * time.Millisecond)
	require.NoError(t, h.RenderFrame())
	assert.InDelta(t, 20.0, h.RenderFPS(), 1e-9)

	require.NoError(t, h.LoadFile(file, 0))
	c.advance(2 * time.Second)
	require.NoError(t, h.LoadFile(file, 1))
	require.NoError(t, h.LoadFile(file, 1))
	assert.InDelta(t, 2.0, h.SolverInterval(), 1e-9)
}

func TestHeadless_RenderFrameOffline(t *testing.T) {
	dir := t.TempDir()
	h := render.NewHeadless()
	require.NoError(t, h.Initialize())
	h.SetWindowSize(640, 480)
	h.SetPerspective([]float64{45, 0.1, 100})
	h.SetShowGrid(true)

	file := writeFile(t, dir, "mesh")
	require.NoError(t, h.LoadFile(file, 2))
	h.SetCurrentFrameID(2)

	out := filepath.Join(dir, "out", "frame.json")
	require.NoError(t, h.RenderFrameOffline(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var snap render.Snapshot
	require.NoError(t, sonic.ConfigStd.Unmarshal(data, &snap))
	assert.Equal(t, 2, snap.FrameID)
	assert.Equal(t, []domain.FrameFile{file}, snap.Files)
	assert.Equal(t, domain.Resolution{Width: 640, Height: 480}, snap.Resolution)
	assert.Equal(t, []float64{45, 0.1, 100}, snap.Perspective)
	assert.True(t, snap.ShowGrid)
}
