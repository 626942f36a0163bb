package server

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/leapstack-labs/docnav/internal/server/notifier"
)

// debounceInterval collapses bursts of file events, such as an editor
// writing a temp file and renaming it, into a single reload.
const debounceInterval = 100 * time.Millisecond

// newContentWatcher watches dir and all its visible subdirectories.
func newContentWatcher(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watchDirRecursive(watcher, dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// watchLoop broadcasts a reload after content changes settle. It owns
// watcher and closes it on return.
func (s *Server) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) error {
	defer func() { _ = watcher.Close() }()

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New directories are not covered by the initial walk.
			if event.Has(fsnotify.Create) {
				if err := watchDirRecursive(watcher, event.Name); err != nil {
					s.logger.Debug("failed to watch new path", "path", event.Name, "error", err)
				}
			}

			if !isContentEvent(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				n := s.notifier.Broadcast(notifier.ReloadEvent)
				s.logger.Debug("content changed", "file", name, "clients", n)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// isContentEvent reports changes that can alter the tree: pages, metadata
// descriptors, and removals or renames of anything (directories included).
func isContentEvent(event fsnotify.Event) bool {
	if isHiddenPath(event.Name) {
		return false
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return true
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	base := filepath.Base(event.Name)
	if base == docs.MetadataFileName {
		return true
	}
	ext := strings.ToLower(filepath.Ext(base))
	return ext == ".md" || ext == ".mdx"
}

func isHiddenPath(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// watchDirRecursive adds a directory and all subdirectories to the watcher,
// skipping hidden directories. A path that is not a directory is ignored.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHiddenPath(path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
