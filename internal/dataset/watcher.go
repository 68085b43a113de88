package dataset

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"sentimap/internal/control"
)

// Watcher signals when a file-backed dataset changes on disk. Editors
// save through temp-file renames, so it watches the parent directory
// and filters events down to the dataset file. Bursts of writes coalesce
// through a debouncer into a single notification.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	delay    time.Duration
	debounce control.Debouncer
	notify   func()
	logger   *zap.Logger
	done     chan struct{}
}

// NewWatcher starts watching path and calls notify after changes settle
// for delay. Close releases the underlying watcher.
func NewWatcher(path string, delay time.Duration, logger *zap.Logger, notify func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		path:   abs,
		delay:  delay,
		notify: notify,
		logger: logger,
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("dataset watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.logger.Debug("dataset changed on disk",
		zap.String("path", w.path),
		zap.String("op", event.Op.String()))
	w.debounce.Schedule(w.delay, func(token uint64) {
		if !w.debounce.Current(token) {
			return
		}
		w.notify()
	})
}

// Close stops watching and cancels any pending notification. The
// debouncer is canceled only after the event loop drains, so a change
// handled mid-close cannot arm a timer that outlives the watcher.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	w.debounce.Cancel()
	return err
}
