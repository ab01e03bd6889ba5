package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/codec"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestJSON_ToNative(t *testing.T) {
	c := codec.NewJSON()
	ref := domain.NewOutputRef("seed", "out")

	native, err := c.ToNative(ref, map[string]any{"b": 2, "a": 1.5})
	require.NoError(t, err)

	data, ok := native.([]byte)
	require.True(t, ok, "native representation is encoded bytes, got %T", native)
	assert.Equal(t, `{"a":1.5,"b":2}`, string(data), "keys are sorted")
}

func TestJSON_ToManaged(t *testing.T) {
	c := codec.NewJSON()
	ref := domain.NewOutputRef("seed", "out")

	managed, err := c.ToManaged(ref, []byte(`[1,"two",true]`))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), "two", true}, managed)
}

func TestJSON_ToManaged_NotEncoded(t *testing.T) {
	c := codec.NewJSON()

	_, err := c.ToManaged(domain.NewOutputRef("seed", "out"), 42)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "seed::out", zErr.Metadata()["ref"])
	assert.Equal(t, "int", zErr.Metadata()["type"])
}

func TestJSON_ToManaged_Corrupt(t *testing.T) {
	c := codec.NewJSON()

	_, err := c.ToManaged(domain.NewOutputRef("seed", "out"), []byte(`{broken`))
	assert.Error(t, err)
}

func TestJSON_ToNative_Unsupported(t *testing.T) {
	c := codec.NewJSON()

	_, err := c.ToNative(domain.NewOutputRef("seed", "out"), make(chan int))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	data, err := codec.Encode(42.0)
	require.NoError(t, err)

	v, err := codec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}
