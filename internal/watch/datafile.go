// Package watch reacts to changes of the on-disk dataset.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long a burst of writes must stay quiet before the
// change handler runs. Rewriting a large SQLite file emits many events.
const DefaultDebounce = 2 * time.Second

// DataFileWatcher calls OnChange after the watched file is written, created
// or replaced. The parent directory is watched so atomic rename-over
// replacements are seen.
type DataFileWatcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context)
	log      *logrus.Logger
}

// NewDataFileWatcher creates a watcher for path. A zero debounce uses DefaultDebounce.
func NewDataFileWatcher(path string, debounce time.Duration, onChange func(ctx context.Context), log *logrus.Logger) *DataFileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &DataFileWatcher{path: filepath.Clean(path), debounce: debounce, onChange: onChange, log: log}
}

// Run watches until ctx is cancelled.
func (w *DataFileWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.log.WithField("path", w.path).Info("watching data file for changes")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}

			w.log.WithFields(logrus.Fields{"path": ev.Name, "op": ev.Op.String()}).Debug("data file event")
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.log.WithError(err).Warn("data file watcher error")

		case <-timer.C:
			w.log.WithField("path", w.path).Info("data file changed")
			w.onChange(ctx)
		}
	}
}
