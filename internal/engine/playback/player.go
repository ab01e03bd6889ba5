// Package playback drives the per-frame loop between the frame source and the
// rendering core: it advances the current frame, keeps the core's cache of frame
// data in step with what is on disk, and mirrors the core's timings into the
// playback status.
package playback

import (
	"context"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

// Player is the playback state machine. It starts idle and accepts ticks once
// Initialize succeeded. A Player is driven from a single goroutine.
type Player struct {
	renderer ports.Renderer
	frames   ports.FrameSource
	logger   ports.Logger
	tracer   ports.Tracer
	metrics  ports.Metrics

	status      domain.PlaybackStatus
	initialized bool

	// loaded is the file set last handed to the renderer; hasLoaded distinguishes
	// an empty set from nothing loaded yet.
	loaded    domain.FrameFileSet
	hasLoaded bool
}

// New creates an idle Player with the default status.
func New(
	renderer ports.Renderer,
	frames ports.FrameSource,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Player {
	return &Player{
		renderer: renderer,
		frames:   frames,
		logger:   logger,
		tracer:   tracer,
		metrics:  metrics,
		status:   domain.DefaultPlaybackStatus(),
	}
}

// Initialize prepares the rendering core. Calling it again is a no-op.
func (p *Player) Initialize() error {
	if p.initialized {
		return nil
	}
	if err := p.renderer.Initialize(); err != nil {
		return zerr.Wrap(err, "failed to initialize renderer")
	}
	p.initialized = true
	return nil
}

// Initialized reports whether Initialize succeeded.
func (p *Player) Initialized() bool {
	return p.initialized
}

// Tick runs one iteration of the loop: upload the view parameters, update the
// current frame and its data, render, then read the core's timings back.
func (p *Player) Tick(ctx context.Context) error {
	if !p.initialized {
		return errNotInitialized()
	}

	_, span := p.tracer.Start(ctx, "playback.tick")
	defer span.End()

	p.uploadParams()
	if err := p.frameUpdate(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := p.renderer.RenderFrame(); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to render frame"), "frame", p.renderer.CurrentFrameID())
		span.RecordError(err)
		return err
	}
	p.sync()
	span.SetAttribute("frame", p.status.CurrentFrame)
	return nil
}

// RecordTick uploads the view parameters and renders the current frame into path.
// The frame is not advanced.
func (p *Player) RecordTick(ctx context.Context, path string) error {
	if !p.initialized {
		return errNotInitialized()
	}

	_, span := p.tracer.Start(ctx, "playback.record_tick", ports.WithAttribute("path", path))
	defer span.End()

	p.uploadParams()
	if err := p.renderer.RenderFrameOffline(path); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to record frame"), "path", path)
		span.RecordError(err)
		return err
	}
	return nil
}

// CurrentFrame returns the rendering core's current frame.
func (p *Player) CurrentFrame() int {
	return p.renderer.CurrentFrameID()
}

// SetCurrentFrame moves to frame, clamped into the available range. With no frames
// available the frame is 0.
func (p *Player) SetCurrentFrame(frame int) {
	frame = clamp(frame, p.frames.FrameCount())
	p.renderer.SetCurrentFrameID(frame)
	p.status.CurrentFrame = frame
	p.status.TargetFrame = frame
}

// Status returns a copy of the playback status.
func (p *Player) Status() domain.PlaybackStatus {
	return p.status.Clone()
}

// ApplyStatus takes over the settings of s. Values observed from the rendering
// core are left untouched.
func (p *Player) ApplyStatus(s domain.PlaybackStatus) {
	p.SetPlaying(s.Playing)
	p.SetResolution(s.Resolution)
	p.SetPerspective(s.Perspective)
	p.SetCacheFrames(s.CacheFrames)
	p.SetShowGrid(s.ShowGrid)
	p.status.TargetFrame = s.TargetFrame
}

// SetPlaying starts or pauses playback.
func (p *Player) SetPlaying(playing bool) {
	p.status.Playing = playing
}

// SetResolution sets the viewport size.
func (p *Player) SetResolution(r domain.Resolution) {
	p.status.Resolution = r
}

// SetPerspective sets the camera parameters forwarded to the rendering core.
func (p *Player) SetPerspective(params []float64) {
	p.status.Perspective = append([]float64(nil), params...)
}

// SetCacheFrames sets how many frames the rendering core keeps cached.
func (p *Player) SetCacheFrames(n int) {
	p.status.CacheFrames = max(n, 0)
}

// SetShowGrid toggles the reference grid.
func (p *Player) SetShowGrid(show bool) {
	p.status.ShowGrid = show
}

func (p *Player) uploadParams() {
	p.renderer.SetWindowSize(p.status.Resolution.Width, p.status.Resolution.Height)
	p.renderer.SetPerspective(p.status.Perspective)
	p.renderer.SetPlaying(p.status.Playing)
}

func (p *Player) frameUpdate() error {
	if p.frames.PathChanged() {
		p.renderer.ClearGraphics()
		p.loaded, p.hasLoaded = nil, false
		p.metrics.GraphicsCleared()
		p.logger.Info("frames path changed, graphics cleared")
	}

	frame := p.renderer.CurrentFrameID()
	if p.status.Playing {
		frame++
	}
	count := p.frames.FrameCount()
	frame = clamp(frame, count)

	p.renderer.SetCurrentFrameID(frame)
	p.renderer.GarbageCollectFrames(p.status.CacheFrames)
	p.renderer.SetShowGrid(p.status.ShowGrid)

	if count == 0 {
		return nil
	}

	files, err := p.frames.FrameFiles(frame)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to list frame files"), "frame", frame)
	}
	if p.hasLoaded && files.Equal(p.loaded) {
		return nil
	}

	for _, file := range files {
		if err := p.renderer.LoadFile(file, frame); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, "failed to load frame file"), "frame", frame), "path", file.Path)
		}
	}
	p.loaded, p.hasLoaded = files, true
	p.metrics.FrameFilesLoaded(len(files))
	p.logger.Debug("frame files loaded", "frame", frame, "files", len(files))
	return nil
}

func (p *Player) sync() {
	p.status.CurrentFrame = p.renderer.CurrentFrameID()
	p.status.SolverInterval = p.renderer.SolverInterval()
	p.status.RenderFPS = p.renderer.RenderFPS()
}

// clamp limits frame to [0, count-1], or 0 when count is 0.
func clamp(frame, count int) int {
	if count <= 0 {
		return 0
	}
	return min(max(frame, 0), count-1)
}

func errNotInitialized() error {
	return zerr.Wrap(domain.ErrPlayerNotInitialized, "cannot tick")
}
