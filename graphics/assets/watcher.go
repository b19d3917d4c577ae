package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/opal/graphics/core"
)

// WatchEvent reports a watched file that was created or rewritten.
type WatchEvent struct {
	Path string
}

// Watcher watches directories recursively and reports changes to files
// with matching extensions. Its intended use is shader hot-reloading:
// listen on Events and recompile on the context thread when a source
// file changes. The watcher itself never touches the device.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	exts     map[string]bool
	events   chan WatchEvent
	errors   chan error
	done     chan struct{}
	isClosed bool
}

// NewWatcher creates a watcher reporting files with the given
// extensions. Without arguments it defaults to the common shader source
// extensions.
func NewWatcher(exts ...string) (*Watcher, error) {
	if len(exts) == 0 {
		exts = []string{".vert", ".vs", ".frag", ".fs", ".geom", ".gs"}
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsnotify: fsWatch,
		exts:     make(map[string]bool, len(exts)),
		events:   make(chan WatchEvent),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	for _, ext := range exts {
		w.exts[strings.ToLower(ext)] = true
	}

	go w.start()
	return w, nil
}

// Watch starts watching the named directory and all sub-directories.
func (w *Watcher) Watch(dir string) error {
	if w.isClosed {
		return errors.New("watcher already closed")
	}
	return w.watchRecursive(dir)
}

// Events delivers change notifications for matching files.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and its channels.
func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&fsnotify.Create != 0 {
				// New sub-directories join the watch set.
				if info, err := os.Stat(e.Name); err == nil && info.IsDir() {
					if err := w.watchRecursive(e.Name); err != nil {
						w.errors <- err
					}
					continue
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 && w.exts[strings.ToLower(filepath.Ext(e.Name))] {
				core.LogDebug("shader source changed: %s", e.Name)
				select {
				case w.events <- WatchEvent{Path: e.Name}:
				case <-w.done:
					return
				}
			}
			if e.Op&fsnotify.Remove != 0 {
				_ = w.fsnotify.Remove(e.Name)
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) watchRecursive(dir string) error {
	return filepath.Walk(dir, func(walkPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		return nil
	})
}
