package domain

import "slices"

// DefaultCacheFrames is the retention window used when none is configured.
const DefaultCacheFrames = 10

// Resolution is the viewport size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlaybackStatus is the mutable view and playback state shared between the player
// and its observers.
type PlaybackStatus struct {
	CurrentFrame   int        `json:"current_frame"`
	TargetFrame    int        `json:"target_frame"`
	Playing        bool       `json:"playing"`
	SolverInterval float64    `json:"solver_interval"`
	RenderFPS      float64    `json:"render_fps"`
	Resolution     Resolution `json:"resolution"`
	// Perspective is forwarded to the rendering core verbatim.
	Perspective []float64 `json:"perspective,omitempty"`
	CacheFrames int       `json:"cache_frames"`
	ShowGrid    bool      `json:"show_grid"`
}

// DefaultPlaybackStatus returns the status a fresh viewer starts with.
func DefaultPlaybackStatus() PlaybackStatus {
	return PlaybackStatus{
		Playing:     true,
		Resolution:  Resolution{Width: 1, Height: 1},
		CacheFrames: DefaultCacheFrames,
		ShowGrid:    true,
	}
}

// Clone returns a copy that shares no slices with s.
func (s PlaybackStatus) Clone() PlaybackStatus {
	s.Perspective = slices.Clone(s.Perspective)
	return s
}

// FrameFile is one data file belonging to a frame.
type FrameFile struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
	Path string `json:"path"`
}

// FrameFileSet is the ordered list of files that make up one frame.
type FrameFileSet []FrameFile

// Equal reports whether both sets hold the same files in the same order.
// A nil set equals an empty one.
func (s FrameFileSet) Equal(other FrameFileSet) bool {
	return slices.Equal(s, other)
}
