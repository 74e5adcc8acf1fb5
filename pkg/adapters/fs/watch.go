package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/plume/pkg/core"
)

// Watch observes the document tree and emits debounced change events for
// markdown files matching pattern (empty pattern matches all). The returned
// channel closes when ctx is cancelled or the watcher fails.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := r.recursiveAdd(watcher); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(50 * time.Millisecond)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		// Runs first on unwind: all in-flight timers must finish before the
		// events channel closes.
		defer deb.stopAndWait(5 * time.Second)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				r.handleEvent(ctx, watcher, event, pattern, deb, events)

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				r.config.Logger.Error("fsnotify error", "error", werr)
				if r.config.ErrorHandler != nil {
					r.config.ErrorHandler(werr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher terminated", "error", err)
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		}
	}))

	return events, nil
}

func (r *Repository) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, pattern string, deb *debouncer, events chan<- core.Event) {
	r.config.Logger.Debug("event received", "name", event.Name)

	// Newly created directories join the watch set.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !isHidden(filepath.Base(event.Name)) {
				_ = watcher.Add(event.Name)
			}
			return
		}
	}

	id, err := r.resolveID(event.Name)
	if err != nil {
		return
	}
	if r.shouldIgnore(id+".md", pattern) {
		return
	}
	eType := mapEventType(event)
	if eType == "" {
		return
	}

	deb.add(core.Event{Type: eType, ID: id, Timestamp: time.Now().Unix()}, func(e core.Event) {
		defer func() {
			// The channel may close while a timer is firing during shutdown.
			_ = recover()
		}()
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})
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

// recursiveAdd registers the root and every visible subdirectory.
func (r *Repository) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != r.Path && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
