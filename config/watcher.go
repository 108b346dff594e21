package config

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk and
// publishes the result on Changes. Only the latest reload is kept if the
// consumer falls behind.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	changes chan *Config
	logger  *log.Logger
	done    chan struct{}
}

// Watch starts watching path. The parent directory is watched rather than
// the file so that editors which save by rename are picked up.
func Watch(ctx context.Context, path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fw,
		changes: make(chan *Config, 1),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			// moved away or deleted: keep the running settings until a
			// new file is created in its place
			if _, err := os.Stat(w.path); err != nil {
				w.logger.Printf("config reload skipped: %v", err)
				continue
			}
			cfg, err := LoadFrom(w.path)
			if err != nil {
				w.logger.Printf("config reload skipped: %v", err)
				continue
			}
			w.publish(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Printf("config watcher: %v", err)
		}
	}
}

func (w *Watcher) publish(cfg *Config) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- cfg
}
