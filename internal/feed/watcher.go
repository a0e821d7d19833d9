// Package feed moves stats between the workers and the dashboard: a
// debounced file watcher that loads the published snapshot into the store,
// a publisher that writes the store out, and a demo worker.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/Dallionking/esports-stream/internal/stats"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads the feed file into a store whenever it changes. It
// watches the parent directory, since WriteFile replaces the file by rename.
type Watcher struct {
	path     string
	store    *stats.Store
	fsw      *fsnotify.Watcher
	debounce time.Duration
	updates  chan stats.Stats
	log      logrus.FieldLogger
}

// NewWatcher starts watching the directory holding path.
func NewWatcher(path string, store *stats.Store, debounce time.Duration, log logrus.FieldLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Watcher{
		path:     path,
		store:    store,
		fsw:      fsw,
		debounce: debounce,
		updates:  make(chan stats.Stats, 1),
		log:      log.WithField("module", "feed"),
	}, nil
}

// Updates delivers each snapshot applied to the store. Only the latest
// undelivered snapshot is kept.
func (w *Watcher) Updates() <-chan stats.Stats {
	return w.updates
}

// Load reads the feed file once and applies it. A missing file is not an
// error; workers may not have published yet.
func (w *Watcher) Load() error {
	s, err := stats.ReadFile(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	w.apply(s)
	return nil
}

func (w *Watcher) apply(s stats.Stats) {
	w.store.Replace(s)
	select {
	case <-w.updates:
	default:
	}
	w.updates <- s
}

// Run watches until ctx is cancelled. Malformed snapshots are logged and
// skipped; the store keeps its last good value.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Load(); err != nil {
		w.log.WithError(err).Warn("initial feed load failed")
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if name != base || strings.Contains(name, ".tmp-") {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.Load(); err != nil {
				w.log.WithError(err).Warn("ignoring unreadable feed")
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Publish writes the store to path every interval until ctx is cancelled,
// and once more on the way out.
func Publish(ctx context.Context, store *stats.Store, path string, interval time.Duration, log logrus.FieldLogger) error {
	log = log.WithField("module", "feed")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := stats.WriteFile(path, store.Snapshot()); err != nil {
				log.WithError(err).Warn("final publish failed")
			}
			return nil
		case <-ticker.C:
			if err := stats.WriteFile(path, store.Snapshot()); err != nil {
				log.WithError(err).Warn("publish failed")
			}
		}
	}
}
