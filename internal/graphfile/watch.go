package graphfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/algoviz/core"
)

// Watch loads path once, then reloads it every time the file is written or
// re-created, calling fn with each result. A file that fails to load is
// reported through fn with a nil graph; watching continues. Watch blocks
// until ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by rename are still seen.
func Watch(ctx context.Context, path string, fn func(*core.Graph, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("graph watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("graph watcher add %s: %w", path, err)
	}
	target := filepath.Clean(path)

	fn(Load(path))
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn(Load(path))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("graph watcher %s: %w", path, err))
		case <-ctx.Done():
			return nil
		}
	}
}
