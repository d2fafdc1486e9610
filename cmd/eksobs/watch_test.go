package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestNewSynthCmd_WatchFlags(t *testing.T) {
	cmd := newSynthCmd()

	if cmd.Flags().Lookup("watch") == nil {
		t.Error("missing --watch flag")
	}

	flag := cmd.Flags().Lookup("debounce")
	if flag == nil {
		t.Fatal("missing --debounce flag")
	}
	if flag.DefValue != "500ms" {
		t.Errorf("debounce default = %q, want '500ms'", flag.DefValue)
	}
}

// startWatchLoop runs watchLoop over dir and reports each resynthesis on the
// returned channel. Cleanup stops the loop.
func startWatchLoop(t *testing.T, dir, target string) <-chan struct{} {
	t.Helper()

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, watcher.Add(dir))

	stop := make(chan os.Signal, 1)
	resynthed := make(chan struct{}, 8)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = watchLoop(watcher, target, 50*time.Millisecond, stop, func() {
			resynthed <- struct{}{}
		})
	}()

	t.Cleanup(func() {
		stop <- os.Interrupt
		<-done
		_ = watcher.Close()
	})

	return resynthed
}

func awaitResynth(t *testing.T, resynthed <-chan struct{}) {
	t.Helper()
	select {
	case <-resynthed:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for resynthesis")
	}
}

func TestWatchLoop_ResynthesizesOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scrape-config.yaml")
	require.NoError(t, os.WriteFile(target, []byte("global: {}\n"), 0644))

	resynthed := startWatchLoop(t, dir, target)

	require.NoError(t, os.WriteFile(target, []byte("global:\n  scrape_interval: 15s\n"), 0644))
	awaitResynth(t, resynthed)
}

func TestWatchLoop_ResynthesizesOnReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scrape-config.yaml")
	require.NoError(t, os.WriteFile(target, []byte("global: {}\n"), 0644))

	resynthed := startWatchLoop(t, dir, target)

	// Editors save by writing a sibling file and renaming it over the
	// target. The directory watch sees the create.
	staging := filepath.Join(dir, ".scrape-config.yaml.tmp")
	require.NoError(t, os.WriteFile(staging, []byte("global:\n  scrape_interval: 15s\n"), 0644))
	require.NoError(t, os.Rename(staging, target))
	awaitResynth(t, resynthed)
}

func TestWatchLoop_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scrape-config.yaml")
	require.NoError(t, os.WriteFile(target, []byte("global: {}\n"), 0644))

	resynthed := startWatchLoop(t, dir, target)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-resynthed:
		t.Fatal("resynthesized for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchLoop_DebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scrape-config.yaml")
	require.NoError(t, os.WriteFile(target, []byte("global: {}\n"), 0644))

	resynthed := startWatchLoop(t, dir, target)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte("global: {}\n"), 0644))
		time.Sleep(5 * time.Millisecond)
	}
	awaitResynth(t, resynthed)

	// The burst lands inside one debounce window, so no second
	// resynthesis follows.
	select {
	case <-resynthed:
		t.Fatal("burst of writes triggered more than one resynthesis")
	case <-time.After(300 * time.Millisecond):
	}
}
