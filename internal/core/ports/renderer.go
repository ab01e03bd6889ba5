package ports

import "go.trai.ch/nodal/internal/core/domain"

// Renderer is the rendering core driven by the playback loop. It owns the frame
// data cache; the loop only tells it what to load and how large a window to keep.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Initialize prepares the core. It is called once before the first frame.
	Initialize() error
	SetWindowSize(width, height int)
	// SetPerspective forwards camera parameters verbatim.
	SetPerspective(params []float64)
	SetPlaying(playing bool)
	CurrentFrameID() int
	SetCurrentFrameID(id int)
	SolverInterval() float64
	RenderFPS() float64
	// ClearGraphics drops every cached graphic.
	ClearGraphics()
	// GarbageCollectFrames evicts cached frame data outside a window of the given size.
	GarbageCollectFrames(window int)
	SetShowGrid(show bool)
	// LoadFile loads one data file into the cache tagged with frameID.
	LoadFile(file domain.FrameFile, frameID int) error
	// RenderFrame draws the current frame.
	RenderFrame() error
	// RenderFrameOffline draws the current frame into the file at path.
	RenderFrameOffline(path string) error
}
