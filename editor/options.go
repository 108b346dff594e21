package editor

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gapedit/clipboardx"
	"gapedit/config"
)

type deps struct {
	logger  *log.Logger
	clip    *clipboardx.Clipboard
	configs   <-chan *config.Config
	overrides []func(*config.Config)
}

// Option configures a Session or an Editor.
type Option func(*deps)

func WithLogger(l *log.Logger) Option {
	return func(d *deps) { d.logger = l }
}

func WithClipboard(c *clipboardx.Clipboard) Option {
	return func(d *deps) { d.clip = c }
}

// WithConfigUpdates supplies reloaded settings, normally from
// config.Watcher. They are applied between commands.
func WithConfigUpdates(ch <-chan *config.Config) Option {
	return func(d *deps) { d.configs = ch }
}

// WithOverrides registers adjustments applied to the starting settings
// and to every reload, so command-line choices survive a settings file
// change.
func WithOverrides(fns ...func(*config.Config)) Option {
	return func(d *deps) { d.overrides = append(d.overrides, fns...) }
}

func newDeps(cfg *config.Config, opts []Option) deps {
	var d deps
	for _, opt := range opts {
		opt(&d)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard, "", 0)
	}
	if d.clip == nil {
		d.clip = clipboardx.New(cfg.SystemClipboard)
	}
	return d
}

// override returns a copy of cfg with the registered overrides applied.
func (d *deps) override(cfg *config.Config) *config.Config {
	if len(d.overrides) == 0 {
		return cfg
	}
	c := *cfg
	for _, fn := range d.overrides {
		fn(&c)
	}
	return &c
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenLog opens path for appending and returns a logger on it. An empty
// path or "-" yields a logger that discards everything.
func OpenLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" || path == "-" {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "gapedit ", log.LstdFlags|log.Lmsgprefix), f, nil
}
