package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 500 * time.Millisecond

// Watcher watches the config file and reloads it on change.
type Watcher struct {
	onReload func(*Config, error)
	current  *Config
	fsw      *fsnotify.Watcher
	done     chan struct{}
	path     string
	mu       sync.RWMutex
	reloads  atomic.Uint32
}

// NewWatcher loads the config at path and starts watching it.
// onReload may be nil.
func NewWatcher(path string, onReload func(*Config, error)) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to load initial config: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: failed to create file watcher: %w", err)
	}

	// Watch the directory: saves that rename a new file over path replace the
	// inode, and a watch on the file itself would be lost with it.
	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: failed to watch %s: %w", path, err)
	}

	if onReload == nil {
		onReload = func(*Config, error) {}
	}

	w := &Watcher{
		path:     path,
		onReload: onReload,
		current:  cfg,
		fsw:      fsw,
		done:     make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch waits for changes to the config file and reloads after they settle.
func (w *Watcher) watch() {
	defer close(w.done)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, w.reload)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			slog.Error("Config watcher error", "error", err)
		}
	}
}

// reload reloads the config file. The previous snapshot is kept when the new file is invalid.
func (w *Watcher) reload() {
	count := w.reloads.Add(1)
	slog.Info("Reloading config file", "path", w.path, "count", count)

	cfg, err := Load(w.path)
	if err != nil {
		slog.Error("Failed to reload config", "path", w.path, "error", err)
		w.onReload(nil, err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()

	slog.Info("Config reloaded successfully", "count", count)
	w.onReload(cfg, nil)
}

// Snapshot returns the current config snapshot (thread-safe).
func (w *Watcher) Snapshot() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.current
}

// ReloadCount returns the number of times the config has been reloaded.
func (w *Watcher) ReloadCount() uint32 {
	return w.reloads.Load()
}

// Close stops watching the file.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
