package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/noty/pkg/core"
)

const watchDebounce = 50 * time.Millisecond

// Watch implements core.Watchable.
// The parent directory is watched instead of the file itself because atomic
// saves replace the file through a rename. The returned channel is closed once
// ctx is done.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	target, err := filepath.Abs(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &core.IOError{Op: "watch", Path: dir, Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)
	deb := newDebouncer(watchDebounce)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()

		err := r.watchLoop(ctx, watcher, target, deb, events)
		if waitErr := deb.stopAndWait(5 * time.Second); waitErr != nil {
			r.config.Logger.Warn("store watcher: debounced callback still running", "error", waitErr)
		}
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("store watcher stopped", "error", err)
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, deb *debouncer, out chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			if shouldIgnore(event, target) {
				continue
			}

			eType := mapEventType(event)
			if eType == "" {
				continue
			}

			deb.add(target, core.Event{
				Type:      eType,
				Path:      target,
				Timestamp: time.Now().Unix(),
			}, func(e core.Event) {
				// out may already be closed if the loop ended without ctx being done.
				defer func() { _ = recover() }()
				select {
				case out <- e:
				case <-ctx.Done():
				}
			})

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// shouldIgnore drops atomic-write temp files and anything that is not the store.
func shouldIgnore(event fsnotify.Event, target string) bool {
	if matched, _ := doublestar.Match(TempFilePrefix+"*", filepath.Base(event.Name)); matched {
		return true
	}
	return filepath.Clean(event.Name) != target
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
