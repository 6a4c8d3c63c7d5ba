// Package watch signals when the report store file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single rewrite produces
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single file
type Watcher struct {
	path     string
	debounce time.Duration
}

// New creates a watcher for the file at path
func New(path string) *Watcher {
	return &Watcher{path: path, debounce: DefaultDebounce}
}

// Watch returns a channel that receives a value each time the file is
// written, created or renamed into place. The channel is closed when ctx is
// done or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory (not the file itself): the store is replaced by
	// rename and may not exist yet.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	changes := make(chan struct{}, 1)
	name := filepath.Base(w.path)

	go func() {
		defer watcher.Close()
		defer close(changes)

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(w.debounce)
				} else {
					timer.Reset(w.debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case changes <- struct{}{}:
				default:
					// a change is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).WithField("path", w.path).Warn("store watcher error")
			}
		}
	}()

	return changes, nil
}
