package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// WatcherOption configures the Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last file event
// before reloading. Editors often write a file in several steps.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnReload registers a callback run after every reload attempt.
func WithOnReload(fn func(err error)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watcher reloads a file-backed Source whenever its file changes.
type Watcher struct {
	src      *Source
	log      *logger.Logger
	debounce time.Duration
	onReload func(err error)
}

// NewWatcher creates a watcher for src. src must be file-backed.
func NewWatcher(src *Source, log *logger.Logger, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		src:      src,
		log:      log,
		debounce: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. The parent directory is watched rather
// than the file itself so rename-on-save editors keep working.
func (w *Watcher) Run(ctx context.Context) error {
	if w.src.Path() == "" {
		return errors.New("catalog watcher: source has no backing file")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	target := filepath.Clean(w.src.Path())
	dir := filepath.Dir(target)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.log.Info("watching %s for changes", target)

	const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("watcher stopped")
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&interesting == 0 {
				continue
			}
			w.log.Debug("event %s on %s", ev.Op, ev.Name)
			pending = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error: %v", err)

		case <-pending:
			pending = nil
			err := w.src.Reload()
			if err != nil {
				w.log.Error("reloading recipes: %v", err)
			}
			if w.onReload != nil {
				w.onReload(err)
			}
		}
	}
}
