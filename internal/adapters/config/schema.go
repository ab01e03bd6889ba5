package config

// SupportedVersion is the only project schema version understood by the loader.
const SupportedVersion = "1"

// Projectfile represents the structure of the nodal.yaml project file.
type Projectfile struct {
	Version  string             `yaml:"version"`
	Nodes    map[string]NodeDTO `yaml:"nodes"`
	Playback PlaybackDTO        `yaml:"playback"`
}

// NodeDTO represents a node definition in the project file.
type NodeDTO struct {
	Type   string            `yaml:"type"`
	Params map[string]any    `yaml:"params"`
	Inputs map[string]string `yaml:"inputs"`
}

// PlaybackDTO holds the optional playback settings. Unset fields keep their defaults.
type PlaybackDTO struct {
	Frames      string    `yaml:"frames"`
	Resolution  []int     `yaml:"resolution"`
	Perspective []float64 `yaml:"perspective"`
	CacheFrames *int      `yaml:"cacheFrames"`
	ShowGrid    *bool     `yaml:"showGrid"`
	Playing     *bool     `yaml:"playing"`
}
