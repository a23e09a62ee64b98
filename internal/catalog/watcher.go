package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/onboard/internal/logging"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a catalog file when it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *logging.Logger

	// Callbacks for reload results
	onChange func([]onboard.Feature)
	onError  func(error)

	mu      sync.Mutex
	stopCh  chan struct{}
	done    chan struct{}
	started bool
}

// NewWatcher creates a watcher for the catalog at path. The parent
// directory is watched so editors that replace the file are handled.
func NewWatcher(path string, logger *logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	if logger == nil {
		logger = logging.NopLogger()
	}

	return &Watcher{
		watcher:  watcher,
		path:     abs,
		debounce: DefaultDebounce,
		logger:   logger.WithComponent("catalog-watcher"),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce overrides the debounce interval. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debounce = d
	}
}

// SetCallbacks sets the reload callbacks. Either may be nil.
func (w *Watcher) SetCallbacks(onChange func([]onboard.Feature), onError func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = onChange
	w.onError = onError
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.watchLoop()
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	started := w.started
	select {
	case <-w.stopCh:
		w.mu.Unlock()
		return
	default:
		close(w.stopCh)
	}
	w.mu.Unlock()

	_ = w.watcher.Close()
	if started {
		<-w.done
	}
}

// watchLoop processes filesystem events
func (w *Watcher) watchLoop() {
	defer close(w.done)

	w.mu.Lock()
	debounce := w.debounce
	w.mu.Unlock()

	// Editors often emit several events for a single save
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", "error", err.Error())
		}
	}
}

// reload loads the catalog and reports the result
func (w *Watcher) reload() {
	features, err := Load(w.path)

	w.mu.Lock()
	onChange, onError := w.onChange, w.onError
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("catalog reload failed", "path", w.path, "error", err.Error())
		if onError != nil {
			onError(err)
		}
		return
	}

	w.logger.Info("catalog reloaded", "path", w.path, "features", len(features))
	if onChange != nil {
		onChange(features)
	}
}
