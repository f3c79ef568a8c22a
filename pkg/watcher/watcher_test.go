package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(dir, "preset.yaml")
	require.NoError(t, os.WriteFile(preset, []byte("width: 1\n"), 0o644))

	fw, err := NewFileWatcher(20 * time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{preset}, func(path string) { changed <- path }))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(preset, []byte("width: 2\n"), 0o644))

	select {
	case path := <-changed:
		assert.Equal(t, preset, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(dir, "preset.yaml")
	require.NoError(t, os.WriteFile(preset, nil, 0o644))

	fw, err := NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{preset}, func(path string) { changed <- path }))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	select {
	case path := <-changed:
		t.Fatalf("unexpected change for %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}
