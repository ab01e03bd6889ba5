package ports

import "go.trai.ch/nodal/internal/core/domain"

// Metrics records counters about resolution and playback.
type Metrics interface {
	// NodeEvaluated counts one evaluation of a node in the given domain.
	NodeEvaluated(d domain.Domain)
	// ObjectBridged counts one object copied in the given direction.
	ObjectBridged(dir domain.BridgeDirection)
	// FrameFilesLoaded counts files handed to the rendering core.
	FrameFilesLoaded(n int)
	// GraphicsCleared counts full graphics purges.
	GraphicsCleared()
}
