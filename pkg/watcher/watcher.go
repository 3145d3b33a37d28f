// Package watcher keeps the catalog current by watching the scan roots
// for filesystem changes and triggering rescans, with debouncing so a
// burst of writes (an install copying many files) causes one rescan.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/logger"
)

// DefaultDebounce is how long the watcher waits after the last event
// before firing.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a set of directory trees and invokes a callback after
// changes settle.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func(ctx context.Context)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the settle interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher over roots. Roots that do not exist yet are
// skipped; subdirectories that exist at start are watched recursively and
// newly created ones are added as they appear.
func New(roots []string, onChange func(ctx context.Context), opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filesystem watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return nil // unreadable subtree, skip
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		return nil
	})
}

// Run blocks processing events until ctx is cancelled. The callback runs
// on the watcher goroutine once per settled burst.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	d := newDebouncer(w.debounce)
	defer d.stop()

	log := logger.G(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						log.WithError(err).WithField("dir", event.Name).Warn("failed to watch new directory")
					}
				}
			}
			d.hit()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("filesystem watcher error")
		case <-d.fired():
			log.Debug("filesystem changes settled, rescanning")
			w.onChange(ctx)
		}
	}
}

// debouncer collapses a burst of hits into a single firing once quiet for
// the configured duration.
type debouncer struct {
	d     time.Duration
	timer *time.Timer
}

func newDebouncer(d time.Duration) *debouncer {
	t := time.NewTimer(d)
	if !t.Stop() {
		<-t.C
	}
	return &debouncer{d: d, timer: t}
}

func (b *debouncer) hit() {
	if !b.timer.Stop() {
		select {
		case <-b.timer.C:
		default:
		}
	}
	b.timer.Reset(b.d)
}

func (b *debouncer) fired() <-chan time.Time {
	return b.timer.C
}

func (b *debouncer) stop() {
	b.timer.Stop()
}
