package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/leapstack-labs/docnav/internal/server/notifier"
	"github.com/leapstack-labs/docnav/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContentEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"markdown write", fsnotify.Event{Name: "/c/guides/setup.md", Op: fsnotify.Write}, true},
		{"mdx create", fsnotify.Event{Name: "/c/guides/setup.MDX", Op: fsnotify.Create}, true},
		{"metadata write", fsnotify.Event{Name: "/c/guides/" + docs.MetadataFileName, Op: fsnotify.Write}, true},
		{"directory removed", fsnotify.Event{Name: "/c/guides", Op: fsnotify.Remove}, true},
		{"page renamed", fsnotify.Event{Name: "/c/guides/old.md", Op: fsnotify.Rename}, true},
		{"image write", fsnotify.Event{Name: "/c/guides/shot.png", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "/c/guides/setup.md", Op: fsnotify.Chmod}, false},
		{"editor swap file", fsnotify.Event{Name: "/c/guides/.setup.md.swp", Op: fsnotify.Create}, false},
		{"hidden removed", fsnotify.Event{Name: "/c/.git", Op: fsnotify.Remove}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isContentEvent(tt.event))
		})
	}
}

func TestWatchDirRecursive_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "guides", "advanced"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cache", "deep"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guides", "setup.md"), []byte("# Setup"), 0o600))

	w, err := newContentWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.ElementsMatch(t, []string{
		dir,
		filepath.Join(dir, "guides"),
		filepath.Join(dir, "guides", "advanced"),
	}, w.WatchList())
}

func TestNewContentWatcher_MissingDir(t *testing.T) {
	_, err := newContentWatcher(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchLoop_BroadcastsReload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "guides"), 0o750))

	s := New(Config{ContentDir: dir, Logger: testutil.NewTestLogger(t)})
	events, unsubscribe := s.Notifier().Subscribe()
	defer unsubscribe()

	w, err := newContentWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchLoop(ctx, w) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// A burst of writes collapses into one reload.
	for _, name := range []string{"setup.md", "deploy.md", "upgrade.mdx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "guides", name), []byte("# Page"), 0o600))
	}

	select {
	case ev := <-events:
		assert.Equal(t, notifier.ReloadEvent, ev)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after content change")
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected second event %q", ev)
	case <-time.After(3 * debounceInterval):
	}
}

func TestWatchLoop_IgnoresNonContent(t *testing.T) {
	dir := t.TempDir()

	s := New(Config{ContentDir: dir})
	events, unsubscribe := s.Notifier().Subscribe()
	defer unsubscribe()

	w, err := newContentWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchLoop(ctx, w) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png"), 0o600))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %q", ev)
	case <-time.After(3 * debounceInterval):
	}
}

func TestWatchLoop_WatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()

	s := New(Config{ContentDir: dir})
	events, unsubscribe := s.Notifier().Subscribe()
	defer unsubscribe()

	w, err := newContentWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchLoop(ctx, w) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	newDir := filepath.Join(dir, "tutorials")
	require.NoError(t, os.Mkdir(newDir, 0o750))
	require.Eventually(t, func() bool {
		for _, p := range w.WatchList() {
			if p == newDir {
				return true
			}
		}
		return false
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(newDir, "first.md"), []byte("# First"), 0o600))

	select {
	case ev := <-events:
		assert.Equal(t, notifier.ReloadEvent, ev)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload for page in new directory")
	}
}
