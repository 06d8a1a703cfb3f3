// Package watch reloads a persisted UDO whenever its file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/udostore/pkg/log"
	"github.com/bft-labs/udostore/pkg/persist"
	"github.com/bft-labs/udostore/pkg/udo"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher monitors one UDO file via fsnotify and reloads it through a
// Coordinator on every change. It never writes the file.
type Watcher struct {
	coordinator *persist.Coordinator
	path        string
	debounce    time.Duration
	logger      log.Logger
	onChange    func(udo.Udo)

	mu    sync.Mutex
	timer *time.Timer

	// emitMu serializes onChange; closed is set under it once Run returns.
	emitMu sync.Mutex
	closed bool
}

// NewWatcher creates a Watcher. onChange is called with each reloaded mapping,
// never concurrently with itself and never after Run has returned.
func NewWatcher(c *persist.Coordinator, path string, debounce time.Duration, logger log.Logger, onChange func(udo.Udo)) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		coordinator: c,
		path:        path,
		debounce:    debounce,
		logger:      logger,
		onChange:    onChange,
	}
}

// Run emits the current mapping, then watches the file's directory until ctx
// is cancelled. The directory must exist.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	defer w.shutdown()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.emit()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("udo watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.emit)
}

// shutdown stops the pending reload and waits out one already in flight.
func (w *Watcher) shutdown() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.emitMu.Lock()
	w.closed = true
	w.emitMu.Unlock()
}

func (w *Watcher) emit() {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()
	if w.closed {
		return
	}
	w.reload()
}

// reload only reads. Missing or undecodable text is skipped rather than
// replaced, so a half-written file is left for its writer to finish.
func (w *Watcher) reload() {
	u, ok := w.coordinator.Read()
	if !ok {
		w.logger.Debug("no decodable udo, waiting", log.String("path", w.path))
		return
	}
	if w.onChange != nil {
		w.onChange(u)
	}
}
