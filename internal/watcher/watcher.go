// Package watcher rebuilds the generated module when the library or the
// project membership file is edited outside the running process.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Adravilag/sagebox-lab/internal/csync"
	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 300 * time.Millisecond

// Handler is called once per burst of events on a watched file.
type Handler func(ctx context.Context, path string)

// Watcher watches a fixed set of files through their parent directories, so
// atomic rename-over writes are still observed.
type Watcher struct {
	handler      Handler
	debounceTime time.Duration
	debounceMap  *csync.Map[string, *time.Timer]

	files   map[string]struct{}
	filesMu sync.RWMutex
}

func New(handler Handler) *Watcher {
	return &Watcher{
		handler:      handler,
		debounceTime: DefaultDebounce,
		debounceMap:  csync.NewMap[string, *time.Timer](),
		files:        make(map[string]struct{}),
	}
}

// SetDebounce overrides the quiet period between the last event and the
// handler call.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounceTime = d
}

func (w *Watcher) isWatched(path string) bool {
	w.filesMu.RLock()
	defer w.filesMu.RUnlock()
	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// Run blocks until ctx is done. started, when not nil, is closed once the
// directories are registered.
func (w *Watcher) Run(ctx context.Context, files []string, started chan<- struct{}) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	dirs := make(map[string]struct{})
	w.filesMu.Lock()
	for _, f := range files {
		if f == "" {
			continue
		}
		f = filepath.Clean(f)
		w.files[f] = struct{}{}
		dirs[filepath.Dir(f)] = struct{}{}
	}
	w.filesMu.Unlock()

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			slog.Warn("Cannot watch directory", "path", dir, "error", err)
			continue
		}
		slog.Debug("Watching directory", "path", dir)
	}
	if started != nil {
		close(started)
	}

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.isWatched(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("File event", "path", event.Name, "operation", event.Op.String())
			w.debounceHandleFileEvent(ctx, filepath.Clean(event.Name))
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Error watching file", "error", err)
		}
	}
}

func (w *Watcher) debounceHandleFileEvent(ctx context.Context, path string) {
	timer := time.AfterFunc(w.debounceTime, func() {
		w.debounceMap.Del(path)
		if ctx.Err() != nil {
			return
		}
		w.handler(ctx, path)
	})
	if prev, ok := w.debounceMap.Swap(path, timer); ok {
		prev.Stop()
	}
}

func (w *Watcher) stopTimers() {
	for _, t := range csync.Drain(w.debounceMap) {
		t.Stop()
	}
}
