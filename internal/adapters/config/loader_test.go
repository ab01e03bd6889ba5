package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/config"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const project = `
version: "1"
nodes:
  twice:
    type: ScriptScale
    params: {factor: 2}
    inputs: {in: "seed::out"}
  seed:
    type: Number
    params: {value: 21}
playback:
  frames: ./frames
  resolution: [1280, 720]
  perspective: [0, 0, 5]
  cacheFrames: 4
  showGrid: false
`

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o644))

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug("project loaded", gomock.Any()).Times(1)

	p, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)

	require.Len(t, p.Nodes, 2)
	assert.Equal(t, "seed", p.Nodes[0].Name.String(), "nodes are sorted by name")
	assert.Equal(t, "Number", p.Nodes[0].Type)
	assert.Equal(t, 21, p.Nodes[0].Params["value"])

	twice := p.Nodes[1]
	assert.Equal(t, "twice", twice.Name.String())
	assert.Equal(t, map[string]domain.OutputRef{"in": domain.NewOutputRef("seed", "out")}, twice.Inputs)

	assert.Equal(t, filepath.Join(dir, "frames"), p.FramesPath)
	assert.Equal(t, domain.Resolution{Width: 1280, Height: 720}, p.Playback.Resolution)
	assert.Equal(t, []float64{0, 0, 5}, p.Playback.Perspective)
	assert.Equal(t, 4, p.Playback.CacheFrames)
	assert.False(t, p.Playback.ShowGrid)
	assert.True(t, p.Playback.Playing, "unset fields keep defaults")
}

func TestFileLoader_MissingFile(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	_, err := config.NewLoader(log).Load(filepath.Join(t.TempDir(), "nodal.yaml"))
	require.Error(t, err)
}

func TestParse_Defaults(t *testing.T) {
	p, err := config.Parse([]byte(`version: "1"`))
	require.NoError(t, err)
	assert.Empty(t, p.Nodes)
	assert.Empty(t, p.FramesPath)
	assert.Equal(t, domain.DefaultPlaybackStatus(), p.Playback)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing version", `nodes: {}`, domain.ErrUnsupportedVersion},
		{"future version", `version: "2"`, domain.ErrUnsupportedVersion},
		{"separator in name", "version: \"1\"\nnodes:\n  \"a::b\": {type: Number}", domain.ErrInvalidNodeName},
		{"malformed input", "version: \"1\"\nnodes:\n  a: {type: Add, inputs: {a: \"b\"}}", domain.ErrMalformedReference},
		{"undeclared input", "version: \"1\"\nnodes:\n  a: {type: Add, inputs: {a: \"ghost::out\"}}", domain.ErrUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParse_InvalidPlayback(t *testing.T) {
	for _, input := range []string{
		"version: \"1\"\nplayback: {resolution: [1]}",
		"version: \"1\"\nplayback: {resolution: [0, 10]}",
		"version: \"1\"\nplayback: {cacheFrames: -1}",
		"version: \"1\"\nnodes:\n  a: {params: {}}",
		"version: [",
	} {
		_, err := config.Parse([]byte(input))
		assert.Error(t, err, input)
	}
}
