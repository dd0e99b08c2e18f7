// Package watcher notices external changes to the data root while the
// application is running. It never mutates state itself; it only reports
// that the on-disk tree diverged so the user can refresh.
package watcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MDastan2005/Auto-opener/internal/logger"
)

// settleDelay coalesces bursts of filesystem events into one notice.
const settleDelay = 500 * time.Millisecond

// Watcher watches the data root and fires onChange once per burst of
// external modifications.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      logger.Logger
	onChange func()

	mu      sync.Mutex
	pending *time.Timer
	done    chan struct{}
}

// New starts watching root. onChange is invoked from a background
// goroutine; callers marshal UI work themselves.
func New(root string, log logger.Logger, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsWatcher.Add(root); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	w := &Watcher{
		fs:       fsWatcher,
		log:      log,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()

	log.Info("Watcher", "watching data root", map[string]interface{}{
		"root": root,
	})
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("Watcher", "filesystem event", map[string]interface{}{
				"op":   event.Op.String(),
				"name": event.Name,
			})
			w.schedule()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warning("Watcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		case <-w.done:
			return
		}
	}
}

// schedule arms (or re-arms) the settle timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(settleDelay, w.onChange)
}

// Close stops watching. Safe to call once.
func (w *Watcher) Close() {
	close(w.done)
	w.fs.Close()

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
}
