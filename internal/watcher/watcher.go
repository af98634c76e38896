package watcher

import (
	"context"
	"log"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Event represents a change to a locale file detected by the watcher.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher monitors a locales directory for changes using OS-level
// notifications. Only JSON files produce events; editor temp files and
// other noise in the directory are filtered out.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan Event
	dir    string
}

// New creates a Watcher over the given locales directory.
func New(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsw:    fsw,
		Events: make(chan Event, 256),
		dir:    dir,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Start begins listening for file events. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isLocaleFile(ev.Name) {
				continue
			}
			// Forward relevant events (write, create, remove, rename).
			switch {
			case ev.Op&fsnotify.Write != 0,
				ev.Op&fsnotify.Create != 0,
				ev.Op&fsnotify.Remove != 0,
				ev.Op&fsnotify.Rename != 0:
				// A cancelled consumer stops draining Events; the send
				// must not keep Start alive past that.
				select {
				case w.Events <- Event{Path: ev.Name, Op: ev.Op}:
				case <-ctx.Done():
					return
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// isLocaleFile reports whether path names a JSON file.
func isLocaleFile(path string) bool {
	ok, err := doublestar.Match("*.json", filepath.Base(path))
	return err == nil && ok
}
