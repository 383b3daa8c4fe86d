package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"roster/pkg/logging"
)

// ChangeEvent describes one definition file change. Name is the service
// name derived from the filename.
type ChangeEvent struct {
	Name string
	Path string
}

// Watcher watches the services directory and emits a debounced ChangeEvent
// per changed definition file. Edits typically arrive as bursts of write
// events; debouncing collapses each burst into one reload.
type Watcher struct {
	mu sync.Mutex

	dir              string
	debounceInterval time.Duration

	watcher *fsnotify.Watcher
	pending map[string]*time.Timer
	running bool
	stopCh  chan struct{}
}

// NewWatcher creates a watcher for the storage's services directory.
func NewWatcher(storage *Storage, debounceInterval time.Duration) (*Watcher, error) {
	dir, err := storage.ServicesDir()
	if err != nil {
		return nil, err
	}
	if debounceInterval == 0 {
		debounceInterval = 500 * time.Millisecond
	}
	return &Watcher{
		dir:              dir,
		debounceInterval: debounceInterval,
		pending:          make(map[string]*time.Timer),
	}, nil
}

// Start begins watching and sends events on changes until the context is
// cancelled or Stop is called. Starting a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context, changes chan<- ChangeEvent) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		w.mu.Unlock()
		return err
	}

	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	go w.processEvents(ctx, changes)

	logging.Info("Watcher", "watching %s for definition changes", w.dir)
	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	w.watcher.Close()
	for _, timer := range w.pending {
		timer.Stop()
	}
	w.pending = make(map[string]*time.Timer)
}

func (w *Watcher) processEvents(ctx context.Context, changes chan<- ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isDefinitionFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce(event.Name, changes)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("Watcher", err, "filesystem watch error")
		}
	}
}

// debounce schedules (or reschedules) the event for the path.
func (w *Watcher) debounce(path string, changes chan<- ChangeEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if timer, exists := w.pending[path]; exists {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounceInterval, func() {
		w.mu.Lock()
		delete(w.pending, path)
		running := w.running
		w.mu.Unlock()
		if !running {
			return
		}

		name := definitionName(path)
		logging.Debug("Watcher", "definition %s changed", name)
		select {
		case changes <- ChangeEvent{Name: name, Path: path}:
		case <-w.stopCh:
		}
	})
}

func isDefinitionFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

func definitionName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
