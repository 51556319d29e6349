package app

import (
	"context"
	"errors"

	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// HandleEvent applies one backend event and repaints. Returns ErrQuit when
// the application should exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	var err error
	switch ev.Type {
	case backend.EventKey:
		err = app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventResize:
		app.resize()
	case backend.EventInterrupt:
		if r, ok := ev.Data.(config.Reload); ok {
			app.handleReload(r)
		}
	}
	if errors.Is(err, ErrQuit) {
		return err
	}
	app.reportError(err)
	app.render()
	return nil
}

func (app *Application) handleReload(r config.Reload) {
	if r.Err != nil {
		app.log.Warn("config reload failed", "error", r.Err)
		app.setError(r.Err)
		return
	}
	app.ApplyConfig(r.Config)
	app.setMessage("configuration reloaded")
}

// Run opens the startup files and processes events until quit or ctx is
// cancelled. The backend is shut down on return.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return errors.New("no backend")
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.backend.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, path := range app.opts.Files {
		_, _ = app.OpenFile(path)
	}
	app.resize()

	if app.opts.WatchConfig {
		app.startConfigWatcher(ctx)
	}

	events := app.startInputPolling(ctx)
	app.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.HandleEvent(ev); errors.Is(err, ErrQuit) {
				return nil
			}
		}
	}
}

// startConfigWatcher forwards config reloads to the event loop as backend
// interrupts, so sessions are only touched from the loop goroutine.
func (app *Application) startConfigWatcher(ctx context.Context) {
	w, err := config.NewWatcher(app.opts.ConfigPath)
	if err != nil {
		app.log.Warn("config watch disabled", "error", err)
		return
	}
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			app.log.Warn("config watcher stopped", "error", err)
		}
	}()
	go func() {
		for r := range w.Reloads() {
			app.backend.PostInterrupt(r)
		}
	}()
}

// startInputPolling starts a goroutine that polls for input events.
// PollEvent blocks; shutting the backend down unblocks it.
func (app *Application) startInputPolling(ctx context.Context) <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)
		for {
			ev := app.backend.PollEvent()
			if ev.Type == backend.EventNone && ctx.Err() != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}
