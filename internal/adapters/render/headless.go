// Package render implements a headless rendering core. It keeps the same frame cache
// bookkeeping a windowed core would and renders frames as JSON snapshots.
package render

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Headless)(nil)

// ErrNotInitialized is returned when rendering before Initialize.
var ErrNotInitialized = zerr.New("renderer not initialized")

// Snapshot is the content of one rendered frame.
type Snapshot struct {
	FrameID     int                `json:"frame_id"`
	Files       []domain.FrameFile `json:"files"`
	Resolution  domain.Resolution  `json:"resolution"`
	Perspective []float64          `json:"perspective,omitempty"`
	ShowGrid    bool               `json:"show_grid"`
	Playing     bool               `json:"playing"`
}

// Headless is a ports.Renderer without a display.
type Headless struct {
	mu          sync.Mutex
	initialized bool
	resolution  domain.Resolution
	perspective []float64
	playing     bool
	showGrid    bool
	current     int

	// frames caches loaded files by frame id.
	frames map[int][]domain.FrameFile

	solverInterval float64
	lastArrival    time.Time
	fps            float64
	lastRender     time.Time
	rendered       int

	now func() time.Time
}

// NewHeadless creates a renderer that reads the wall clock.
func NewHeadless() *Headless {
	return NewHeadlessWithClock(time.Now)
}

// NewHeadlessWithClock creates a renderer that reads time from now.
func NewHeadlessWithClock(now func() time.Time) *Headless {
	return &Headless{
		frames: make(map[int][]domain.FrameFile),
		now:    now,
	}
}

// Initialize implements ports.Renderer.
func (h *Headless) Initialize() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.initialized = true
	return nil
}

// SetWindowSize implements ports.Renderer.
func (h *Headless) SetWindowSize(width, height int) {
	h.mu.Lock()
	h.resolution = domain.Resolution{Width: width, Height: height}
	h.mu.Unlock()
}

// SetPerspective implements ports.Renderer.
func (h *Headless) SetPerspective(params []float64) {
	h.mu.Lock()
	h.perspective = slices.Clone(params)
	h.mu.Unlock()
}

// SetPlaying implements ports.Renderer.
func (h *Headless) SetPlaying(playing bool) {
	h.mu.Lock()
	h.playing = playing
	h.mu.Unlock()
}

// CurrentFrameID implements ports.Renderer.
func (h *Headless) CurrentFrameID() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// SetCurrentFrameID implements ports.Renderer.
func (h *Headless) SetCurrentFrameID(id int) {
	h.mu.Lock()
	h.current = id
	h.mu.Unlock()
}

// SolverInterval returns the seconds between the two most recent frames that
// appeared in the cache.
func (h *Headless) SolverInterval() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.solverInterval
}

// RenderFPS returns the rate of the two most recent RenderFrame calls.
func (h *Headless) RenderFPS() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fps
}

// ClearGraphics implements ports.Renderer.
func (h *Headless) ClearGraphics() {
	h.mu.Lock()
	clear(h.frames)
	h.mu.Unlock()
}

// GarbageCollectFrames keeps at most window cached frames, evicting those farthest
// from the current frame first. Ties evict the later frame.
func (h *Headless) GarbageCollectFrames(window int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	window = max(window, 0)
	if len(h.frames) <= window {
		return
	}

	ids := slices.Collect(maps.Keys(h.frames))
	slices.SortFunc(ids, func(a, b int) int {
		da, db := distance(a, h.current), distance(b, h.current)
		if da != db {
			return da - db
		}
		return a - b
	})
	for _, id := range ids[window:] {
		delete(h.frames, id)
	}
}

// SetShowGrid implements ports.Renderer.
func (h *Headless) SetShowGrid(show bool) {
	h.mu.Lock()
	h.showGrid = show
	h.mu.Unlock()
}

// LoadFile adds file to the cache of frameID.
func (h *Headless) LoadFile(file domain.FrameFile, frameID int) error {
	if _, err := os.Stat(file.Path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to load frame file"), "path", file.Path)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, cached := h.frames[frameID]; !cached {
		now := h.now()
		if !h.lastArrival.IsZero() {
			h.solverInterval = now.Sub(h.lastArrival).Seconds()
		}
		h.lastArrival = now
	}
	files := h.frames[frameID]
	if i := slices.IndexFunc(files, func(f domain.FrameFile) bool { return f.Path == file.Path }); i >= 0 {
		files[i] = file
	} else {
		files = append(files, file)
	}
	h.frames[frameID] = files
	return nil
}

// RenderFrame implements ports.Renderer.
func (h *Headless) RenderFrame() error {
	_, err := h.render()
	return err
}

// RenderFrameOffline writes the snapshot of the current frame to path.
func (h *Headless) RenderFrameOffline(path string) error {
	snap, err := h.render()
	if err != nil {
		return err
	}

	data, err := sonic.ConfigStd.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal frame snapshot")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write frame snapshot"), "path", path)
	}
	return nil
}

// Cached returns the ids of the cached frames in ascending order.
func (h *Headless) Cached() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Sorted(maps.Keys(h.frames))
}

// Rendered returns how many frames have been rendered.
func (h *Headless) Rendered() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rendered
}

func (h *Headless) render() (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return Snapshot{}, ErrNotInitialized
	}

	now := h.now()
	if !h.lastRender.IsZero() {
		if elapsed := now.Sub(h.lastRender).Seconds(); elapsed > 0 {
			h.fps = 1 / elapsed
		}
	}
	h.lastRender = now
	h.rendered++

	return Snapshot{
		FrameID:     h.current,
		Files:       slices.Clone(h.frames[h.current]),
		Resolution:  h.resolution,
		Perspective: slices.Clone(h.perspective),
		ShowGrid:    h.showGrid,
		Playing:     h.playing,
	}, nil
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
