package ports

import "go.trai.ch/nodal/internal/core/domain"

// FrameSource provides the data files that make up each frame.
//
//go:generate go run go.uber.org/mock/mockgen -source=frame_source.go -destination=mocks/mock_frame_source.go -package=mocks
type FrameSource interface {
	// SetActivePath switches the location frames are read from.
	SetActivePath(path string) error
	// PathChanged reports whether the active path configuration changed since the
	// previous call.
	PathChanged() bool
	// FrameCount returns the number of frames available.
	FrameCount() int
	// FrameFiles returns the ordered files of frame frameID.
	FrameFiles(frameID int) (domain.FrameFileSet, error)
}
