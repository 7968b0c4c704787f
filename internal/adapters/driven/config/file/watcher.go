package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ragbase/kbchat/internal/logger"
)

// Watcher reloads a ConfigStore when its backing file changes, so a
// long-running TUI picks up edits (e.g. a changed server URL) without
// a restart. Callers that cache derived settings can register an
// OnReload hook.
type Watcher struct {
	store    *ConfigStore
	onReload func()
}

// NewWatcher creates a watcher for the given store.
func NewWatcher(store *ConfigStore) *Watcher {
	return &Watcher{store: store}
}

// OnReload registers a hook invoked after each successful reload.
func (w *Watcher) OnReload(fn func()) {
	w.onReload = fn
}

// Watch blocks until the context is cancelled, reloading the store on
// every write to the config file. Editors often replace files via
// rename, so the parent directory is watched rather than the file.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.store.Path())); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watch error: %v", err)
		}
	}
}
