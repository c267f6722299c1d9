package theme

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"xint/internal/debug"
)

// Watcher re-resolves the theme whenever the override file changes.
type Watcher struct {
	name   string
	path   string
	events chan Theme
}

// NewWatcher watches the override file at path on top of the named preset.
func NewWatcher(name, path string) *Watcher {
	return &Watcher{
		name:   name,
		path:   path,
		events: make(chan Theme, 4),
	}
}

// Events delivers freshly resolved themes. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Theme {
	return w.events
}

// Start begins watching until ctx is done. The parent directory is watched
// so editors that replace the file on save are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}
	target := filepath.Clean(w.path)

	go func() {
		defer fsw.Close()
		defer close(w.events)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				t, err := Resolve(w.name, w.path)
				if err != nil {
					debug.Log("theme reload failed: %v", err)
					continue
				}
				select {
				case w.events <- t:
				default:
				}
				debug.Log("theme file changed: %s (%s)", ev.Name, ev.Op)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				debug.Log("theme watcher error: %v", err)
			}
		}
	}()
	return nil
}
