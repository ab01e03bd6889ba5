package domain

// NodeSpec declares one node of a project: its type, parameters and input wiring.
type NodeSpec struct {
	Name   NodeName
	Type   string
	Params map[string]any
	Inputs map[string]OutputRef
}

// Project is a loaded graph document. Nodes are sorted by name so replaying a
// project is deterministic.
type Project struct {
	Nodes []NodeSpec
	// FramesPath is the directory holding per-frame data files; empty disables playback data.
	FramesPath string
	Playback   PlaybackStatus
}
