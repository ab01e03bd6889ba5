package frames_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/frames"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFrame(t *testing.T, root string, id int, names ...string) {
	t.Helper()
	dir := filepath.Join(root, strconv.Itoa(id))
	require.NoError(t, os.MkdirAll(dir, 0o750))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}
}

func newDirectory(t *testing.T) *frames.Directory {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return frames.NewDirectory(log)
}

func TestDirectory_FramesAndFiles(t *testing.T) {
	root := t.TempDir()
	writeFrame(t, root, 0, "points.ply", "mesh.obj", ".hidden")
	writeFrame(t, root, 1, "mesh.obj")
	writeFrame(t, root, 3, "mesh.obj")

	d := newDirectory(t)
	require.NoError(t, d.SetActivePath(root))

	assert.Equal(t, 2, d.FrameCount(), "counting stops at the first gap")

	files, err := d.FrameFiles(0)
	require.NoError(t, err)
	assert.Equal(t, domain.FrameFileSet{
		{Name: "mesh", Ext: "obj", Path: filepath.Join(root, "0", "mesh.obj")},
		{Name: "points", Ext: "ply", Path: filepath.Join(root, "0", "points.ply")},
	}, files)

	files, err = d.FrameFiles(7)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDirectory_NoActivePath(t *testing.T) {
	d := newDirectory(t)

	assert.False(t, d.PathChanged())
	assert.Equal(t, 0, d.FrameCount())

	files, err := d.FrameFiles(0)
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestDirectory_PathChangedReportsOnce(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	d := newDirectory(t)

	require.NoError(t, d.SetActivePath(a))
	assert.True(t, d.PathChanged())
	assert.False(t, d.PathChanged())

	require.NoError(t, d.SetActivePath(a))
	assert.False(t, d.PathChanged(), "same path is not a change")

	require.NoError(t, d.SetActivePath(b))
	assert.True(t, d.PathChanged())
}

func TestDirectory_PathChangedOnRewrittenFirstFrame(t *testing.T) {
	root := t.TempDir()
	writeFrame(t, root, 0, "mesh.obj")
	d := newDirectory(t)

	require.NoError(t, d.SetActivePath(root))
	assert.True(t, d.PathChanged())

	writeFrame(t, root, 1, "mesh.obj")
	assert.False(t, d.PathChanged(), "new frames are not a change")

	files, err := d.FrameFiles(0)
	require.NoError(t, err)
	require.Len(t, files, 1)

	mesh := filepath.Join(root, "0", "mesh.obj")
	require.NoError(t, os.WriteFile(mesh, []byte("rewritten by a new run"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(mesh, later, later))
	writeFrame(t, root, 0, "normals.bin")

	assert.True(t, d.PathChanged())
	assert.False(t, d.PathChanged())

	files, err = d.FrameFiles(0)
	require.NoError(t, err)
	assert.Len(t, files, 2, "listings are dropped on a change")
}

func TestDirectory_SetActivePathErrors(t *testing.T) {
	d := newDirectory(t)
	require.Error(t, d.SetActivePath(filepath.Join(t.TempDir(), "missing")))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.Error(t, d.SetActivePath(file))
}

func TestDirectory_CachedUntilInvalidated(t *testing.T) {
	root := t.TempDir()
	writeFrame(t, root, 0, "mesh.obj")

	d := newDirectory(t)
	require.NoError(t, d.SetActivePath(root))
	require.Equal(t, 1, d.FrameCount())

	writeFrame(t, root, 1, "mesh.obj")
	assert.Equal(t, 1, d.FrameCount())

	d.Invalidate()
	assert.Equal(t, 2, d.FrameCount())
}

func TestDirectory_WatchPicksUpNewFrames(t *testing.T) {
	root := t.TempDir()
	writeFrame(t, root, 0, "mesh.obj")

	d := newDirectory(t)
	require.NoError(t, d.SetActivePath(root))
	require.Equal(t, 1, d.FrameCount())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Watch(ctx) }()

	// Keep writing frames until the watcher is running and reports one of them.
	require.Eventually(t, func() bool {
		writeFrame(t, root, d.FrameCount(), "mesh.obj")
		return d.FrameCount() > 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
