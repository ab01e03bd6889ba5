package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/core/domain"
)

func TestParseOutputRef(t *testing.T) {
	ref, err := domain.ParseOutputRef("seed::out")
	require.NoError(t, err)
	assert.Equal(t, "seed", ref.Node.String())
	assert.Equal(t, "out", ref.Socket)
	assert.Equal(t, "seed::out", ref.String())
	assert.Equal(t, domain.NewOutputRef("seed", "out"), ref, "refs are comparable by value")
}

func TestParseOutputRef_Malformed(t *testing.T) {
	for _, s := range []string{"", "seed", "seed::", "::out", "a::b::c", "seed:out"} {
		t.Run(s, func(t *testing.T) {
			_, err := domain.ParseOutputRef(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedReference))
		})
	}
}

func TestOutputRef_JSON(t *testing.T) {
	type wiring struct {
		Src domain.OutputRef `json:"src"`
	}

	data, err := json.Marshal(wiring{Src: domain.NewOutputRef("a", "out")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"src":"a::out"}`, string(data))

	var decoded wiring
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.NewOutputRef("a", "out"), decoded.Src)

	err = json.Unmarshal([]byte(`{"src":"broken"}`), &decoded)
	assert.True(t, errors.Is(err, domain.ErrMalformedReference))
}

func TestParseNodeName(t *testing.T) {
	name, err := domain.ParseNodeName("seed")
	require.NoError(t, err)
	assert.Equal(t, domain.NewNodeName("seed"), name)
	assert.False(t, name.IsZero())

	for _, s := range []string{"", "a::b"} {
		_, err := domain.ParseNodeName(s)
		assert.True(t, errors.Is(err, domain.ErrInvalidNodeName), "name %q", s)
	}

	var zero domain.NodeName
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
}

func TestFrameFileSet_Equal(t *testing.T) {
	a := domain.FrameFileSet{{Name: "mesh", Ext: "obj", Path: "/f/0/mesh.obj"}}
	b := domain.FrameFileSet{{Name: "mesh", Ext: "obj", Path: "/f/0/mesh.obj"}}
	c := domain.FrameFileSet{{Name: "mesh", Ext: "obj", Path: "/f/1/mesh.obj"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, domain.FrameFileSet(nil).Equal(domain.FrameFileSet{}))
}

func TestPlaybackStatus_Clone(t *testing.T) {
	s := domain.DefaultPlaybackStatus()
	s.Perspective = []float64{1, 2, 3}

	c := s.Clone()
	c.Perspective[0] = 9

	assert.Equal(t, 1.0, s.Perspective[0])
	assert.Equal(t, domain.DefaultCacheFrames, c.CacheFrames)
}
