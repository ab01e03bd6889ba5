package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/store"
	"go.trai.ch/nodal/internal/core/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "status.json")
	s := store.NewStore(path)

	status := domain.DefaultPlaybackStatus()
	status.CurrentFrame = 7
	status.TargetFrame = 7
	status.Playing = false
	status.Perspective = []float64{1, 2, 3}
	require.NoError(t, s.Save(status))

	loaded, err := store.NewStore(path).Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, status, *loaded)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")
}

func TestStore_LoadMissing(t *testing.T) {
	s := store.NewStore(filepath.Join(t.TempDir(), "status.json"))

	status, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestStore_LoadEmptyAndCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	s := store.NewStore(path)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	status, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, status)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = s.Load()
	require.Error(t, err)
}

func TestStore_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"current_frame": 3}`), 0o644))

	status, err := store.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, status.CurrentFrame)
	assert.Equal(t, domain.DefaultCacheFrames, status.CacheFrames)
	assert.True(t, status.ShowGrid)
}
