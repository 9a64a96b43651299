package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher reports changes of a single file. It watches the parent directory
// so that atomic saves (write to temp file, rename over target) are seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	window    time.Duration
	path      string
	fired     chan struct{}
	changes   chan string
	stopOnce  sync.Once
}

// NewWatcher creates a new file watcher.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		window:    window,
		fired:     make(chan struct{}, 1),
		changes:   make(chan string, 1),
	}, nil
}

// Start begins watching path. Events stop when ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}
	w.path = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}

	debouncer := NewDebouncer(w.window, func([]string) {
		select {
		case w.fired <- struct{}{}:
		default:
		}
	})

	go w.processEvents(ctx, debouncer)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsWatcher.Close()
	})
	return err
}

// Changes returns an iterator that yields the watched path once per burst of changes.
// It ends when the watcher stops.
func (w *Watcher) Changes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.changes {
			if !yield(path) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, debouncer *Debouncer) {
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				debouncer.Add(event.Name)
			}
		case <-w.fired:
			select {
			case w.changes <- w.path:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher: " + err.Error())
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}
