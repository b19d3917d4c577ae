package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForEvent(t *testing.T, w *Watcher) WatchEvent {
	t.Helper()
	select {
	case e := <-w.Events():
		return e
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
	return WatchEvent{}
}

func TestWatcherReportsShaderChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(dir))

	path := filepath.Join(dir, "basic.frag")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}"), 0o644))

	e := waitForEvent(t, w)
	assert.Equal(t, path, e.Path)
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(".vert")
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basic.vert"), []byte("void main() {}"), 0o644))

	// Only the matching file comes through.
	e := waitForEvent(t, w)
	assert.Equal(t, filepath.Join(dir, "basic.vert"), e.Path)
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.Error(t, w.Watch(t.TempDir()))
}
