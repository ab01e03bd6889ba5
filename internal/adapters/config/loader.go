// Package config loads nodal project files.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.GraphLoader = (*FileLoader)(nil)

// FileLoader implements ports.GraphLoader using a YAML file.
type FileLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileLoader.
func NewLoader(logger ports.Logger) *FileLoader {
	return &FileLoader{logger: logger}
}

// Load reads the project at path. A relative frames path is resolved against the
// directory holding the project file.
func (l *FileLoader) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", path)
	}

	project, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if project.FramesPath != "" && !filepath.IsAbs(project.FramesPath) {
		project.FramesPath = filepath.Join(filepath.Dir(path), project.FramesPath)
	}

	l.logger.Debug("project loaded", "path", path, "nodes", len(project.Nodes))
	return project, nil
}

// Parse decodes and validates a project document.
func Parse(data []byte) (*domain.Project, error) {
	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project file")
	}

	if file.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "cannot load project"), "version", file.Version)
	}

	// First pass: validate every name so inputs can be checked against the full set.
	declared := make(map[domain.NodeName]bool, len(file.Nodes))
	for name := range file.Nodes {
		n, err := domain.ParseNodeName(name)
		if err != nil {
			return nil, zerr.With(err, "node", name)
		}
		declared[n] = true
	}

	project := &domain.Project{
		Nodes:    make([]domain.NodeSpec, 0, len(file.Nodes)),
		Playback: domain.DefaultPlaybackStatus(),
	}

	for _, name := range slices.Sorted(maps.Keys(file.Nodes)) {
		spec, err := nodeSpec(name, file.Nodes[name], declared)
		if err != nil {
			return nil, err
		}
		project.Nodes = append(project.Nodes, spec)
	}

	if err := applyPlayback(&project.Playback, file.Playback); err != nil {
		return nil, err
	}
	project.FramesPath = file.Playback.Frames

	return project, nil
}

func nodeSpec(name string, dto NodeDTO, declared map[domain.NodeName]bool) (domain.NodeSpec, error) {
	if dto.Type == "" {
		return domain.NodeSpec{}, zerr.With(zerr.New("node type is required"), "node", name)
	}

	spec := domain.NodeSpec{
		Name:   domain.NewNodeName(name),
		Type:   dto.Type,
		Params: dto.Params,
		Inputs: make(map[string]domain.OutputRef, len(dto.Inputs)),
	}

	for key, raw := range dto.Inputs {
		ref, err := domain.ParseOutputRef(raw)
		if err != nil {
			return domain.NodeSpec{}, zerr.With(zerr.With(err, "node", name), "input", key)
		}
		if !declared[ref.Node] {
			return domain.NodeSpec{}, zerr.With(zerr.With(zerr.With(
				zerr.Wrap(domain.ErrUnknownNode, "input references an undeclared node"),
				"node", name), "input", key), "ref", raw)
		}
		spec.Inputs[key] = ref
	}

	return spec, nil
}

func applyPlayback(status *domain.PlaybackStatus, dto PlaybackDTO) error {
	if dto.Resolution != nil {
		if len(dto.Resolution) != 2 || dto.Resolution[0] <= 0 || dto.Resolution[1] <= 0 {
			return zerr.With(zerr.New("resolution must be two positive integers"), "resolution", dto.Resolution)
		}
		status.Resolution = domain.Resolution{Width: dto.Resolution[0], Height: dto.Resolution[1]}
	}
	if dto.Perspective != nil {
		status.Perspective = slices.Clone(dto.Perspective)
	}
	if dto.CacheFrames != nil {
		if *dto.CacheFrames < 0 {
			return zerr.With(zerr.New("cacheFrames must not be negative"), "cacheFrames", *dto.CacheFrames)
		}
		status.CacheFrames = *dto.CacheFrames
	}
	if dto.ShowGrid != nil {
		status.ShowGrid = *dto.ShowGrid
	}
	if dto.Playing != nil {
		status.Playing = *dto.Playing
	}
	return nil
}
