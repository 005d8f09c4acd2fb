package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "game2.MP4"))
	touch(t, filepath.Join(dir, "game1.mp4"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "game3.mp4"), 0755))

	videos, err := Discover(dir)
	require.NoError(t, err)

	var names []string
	for _, v := range videos {
		names = append(names, v.Filename())
	}

	// Case-insensitive extension match, sorted, non-video files and
	// directories ignored.
	assert.Equal(t, []string{"game1.mp4", "game2.MP4"}, names)
}

func TestDiscoverEmptyDir(t *testing.T) {
	videos, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.True(t, errors.Is(err, ErrVideosDirNotFound))
}
