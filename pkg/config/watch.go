package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk, debouncing editor
// write bursts, and delivers valid configs on Changed. Invalid intermediate
// saves are logged and skipped; the running viewer keeps its last good
// configuration.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	changed  chan Config

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for path. Zero debounce defaults to 200ms.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     path,
		debounce: debounce,
		watcher:  fw,
		changed:  make(chan Config, 1),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start begins watching. The parent directory is watched rather than the file
// itself so atomic save-and-rename editors keep triggering events.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	go w.loop()
	return nil
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	w.cancel()
	w.watcher.Close()
}

// Changed delivers each reloaded config. The channel has one slot; a newer
// config replaces an unconsumed older one.
func (w *Watcher) Changed() <-chan Config {
	return w.changed
}

func (w *Watcher) loop() {
	var lastEvent time.Time
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < w.debounce {
				continue
			}
			lastEvent = now

			// Editors often fire before the write completes.
			time.Sleep(w.debounce / 4)

			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("config watch: skipping reload: %v", err)
				continue
			}

			select {
			case w.changed <- cfg:
			default:
				// Drop the stale pending config and replace it.
				select {
				case <-w.changed:
				default:
				}
				w.changed <- cfg
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
