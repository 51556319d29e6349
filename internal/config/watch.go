package config

import (
	"context"

	"github.com/dshills/hexstorm/internal/config/watcher"
)

// Reload carries the result of re-reading the configuration file.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads the configuration whenever its file changes.
type Watcher struct {
	path    string
	w       *watcher.Watcher
	reloads chan Reload
	load    func(path string) (*Config, error)
}

// NewWatcher watches the configuration file at path. An empty path uses
// DefaultPath(). The file need not exist yet.
func NewWatcher(path string, opts ...watcher.Option) (*Watcher, error) {
	if path == "" {
		path = DefaultPath()
	}
	w, err := watcher.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		path:    path,
		w:       w,
		reloads: make(chan Reload, 1),
		load:    Load,
	}, nil
}

// Reloads returns the reload channel. It is closed when Run returns.
func (cw *Watcher) Reloads() <-chan Reload {
	return cw.reloads
}

// Run delivers reloads until ctx is cancelled, then closes the watcher.
func (cw *Watcher) Run(ctx context.Context) error {
	defer close(cw.reloads)
	defer cw.w.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-cw.w.Events():
			if !ok {
				return nil
			}
			if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
				continue
			}
			cfg, err := cw.load(cw.path)
			select {
			case cw.reloads <- Reload{Config: cfg, Err: err}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-cw.w.Errors():
			if !ok {
				return nil
			}
			select {
			case cw.reloads <- Reload{Err: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
