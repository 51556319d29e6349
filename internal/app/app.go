package app

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/dustin/go-humanize"

	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/logging"
	"github.com/dshills/hexstorm/internal/renderer"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Application is the central coordinator: it owns the documents, routes
// terminal events to the active session and paints frames.
type Application struct {
	cfg    *config.Config
	logger *logging.Logger
	log    *slog.Logger

	backend  backend.Backend
	renderer *renderer.Renderer

	documents *DocumentManager
	recent    *RecentFiles

	prompt   prompt
	lastFind map[promptKind]string
	message  renderer.Message
	confirm  confirmAction

	running    atomic.Bool
	ownsLogger bool
	opts       Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file; empty uses config.DefaultPath().
	ConfigPath string

	// Config overrides loading from ConfigPath.
	Config *config.Config

	// Logger overrides the logger built from the configuration.
	Logger *logging.Logger

	// Files are opened on startup.
	Files []string

	// ReadOnly opens every file read-only.
	ReadOnly bool

	// WatchConfig reloads the configuration file when it changes.
	WatchConfig bool
}

// confirmAction is a destructive command waiting for a second keypress.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmQuit
	confirmClose
)

// New creates an Application. The backend is attached with SetBackend.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}

	logger := opts.Logger
	owns := false
	if logger == nil {
		var err error
		if logger, err = logging.New(cfg.Log.Logging()); err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		owns = true
	}

	app := &Application{
		cfg:        cfg,
		logger:     logger,
		log:        logger.Component("app"),
		documents:  NewDocumentManager(),
		recent:     NewRecentFiles(cfg.Editor.RecentFiles),
		lastFind:   make(map[promptKind]string),
		ownsLogger: owns,
		opts:       opts,
	}
	app.log.Info("starting", "config", cfg.Path, "read_only", cfg.Editor.ReadOnly)
	return app, nil
}

// SetBackend attaches the terminal backend and creates the renderer.
// The backend must already be initialized.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	app.renderer = renderer.New(b, renderer.DefaultTheme())
	app.resize()
	return nil
}

// Close releases the logger if the application created it.
func (app *Application) Close() error {
	if app.ownsLogger {
		return app.logger.Close()
	}
	return nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Documents returns the document manager.
func (app *Application) Documents() *DocumentManager {
	return app.documents
}

// Recent returns the recent files list.
func (app *Application) Recent() *RecentFiles {
	return app.recent
}

// Message returns the current message line.
func (app *Application) Message() renderer.Message {
	return app.message
}

// ActiveDocument returns the active document, or nil.
func (app *Application) ActiveDocument() *Document {
	return app.documents.Active()
}

// engineOptions builds session options from the configuration.
func (app *Application) engineOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithMaxUndoEntries(app.cfg.History.MaxEntries),
		engine.WithMetrics(app.cfg.Layout.Metrics()),
		engine.WithMargins(app.cfg.Layout.Margins()),
	}
	if mode, err := config.ParseMode(app.cfg.Editor.StartMode); err == nil {
		opts = append(opts, engine.WithMode(mode))
	}
	if app.renderer != nil {
		_, _, w, h := app.renderer.ViewArea()
		opts = append(opts, engine.WithViewport(w, h))
	}
	if app.cfg.Editor.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	return opts
}

// OpenFile opens path in a new tab, or switches to it if already open.
func (app *Application) OpenFile(path string) (*Document, error) {
	doc, created, err := app.documents.Open(path, app.engineOptions()...)
	if err != nil {
		opErr := NewOperationError("open", path, err)
		app.log.Error("open failed", "path", path, "error", err)
		app.setError(opErr)
		return nil, opErr
	}
	app.recent.Add(doc.Path)
	if created {
		app.log.Info("opened", "path", doc.Path, "id", doc.ID.String(), "size", doc.Engine.Len())
	}
	app.setMessage(fmt.Sprintf("%s (%s)", doc.Name, humanize.Bytes(uint64(doc.Engine.Len()))))
	return doc, nil
}

// SaveDocument saves the active document. On failure the document stays
// open and dirty.
func (app *Application) SaveDocument() error {
	doc := app.documents.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	if err := doc.Save(); err != nil {
		return app.saveFailed(doc, doc.Path, err)
	}
	app.log.Info("saved", "path", doc.Path, "size", doc.Engine.Len())
	app.setMessage("saved " + doc.Name)
	return nil
}

// SaveDocumentAs writes the active document to path and switches the tab to
// that file. A path held by another tab is refused before anything is
// written.
func (app *Application) SaveDocumentAs(path string) error {
	doc := app.documents.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return app.saveFailed(doc, path, err)
	}
	if other, ok := app.documents.Get(abs); ok && other != doc {
		return app.saveFailed(doc, abs, ErrAlreadyOpen)
	}

	oldPath := doc.Path
	if err := doc.SaveAs(abs); err != nil {
		return app.saveFailed(doc, abs, err)
	}
	if err := app.documents.Rename(oldPath, doc); err != nil {
		return app.saveFailed(doc, abs, err)
	}
	app.recent.Add(abs)
	app.log.Info("saved as", "from", oldPath, "path", abs, "size", doc.Engine.Len())
	app.setMessage("saved " + doc.Name)
	return nil
}

// SaveAll saves every dirty document. Documents that fail stay dirty; their
// errors are joined in open order.
func (app *Application) SaveAll() error {
	var errs []error
	saved := 0
	for _, doc := range app.documents.DirtyDocuments() {
		if err := doc.Save(); err != nil {
			app.log.Error("save failed", "path", doc.Path, "error", err)
			errs = append(errs, NewOperationError("save", doc.Path, err))
			continue
		}
		app.log.Info("saved", "path", doc.Path, "size", doc.Engine.Len())
		saved++
	}
	switch len(errs) {
	case 0:
	case 1:
		app.setError(errs[0])
		return errs[0]
	default:
		app.setError(fmt.Errorf("%d files not saved: %w", len(errs), errs[0]))
		return errors.Join(errs...)
	}
	app.setMessage(fmt.Sprintf("saved %d files", saved))
	return nil
}

func (app *Application) saveFailed(doc *Document, target string, err error) error {
	opErr := NewOperationError("save", target, err)
	app.log.Error("save failed", "path", target, "document", doc.Path, "error", err)
	app.setError(opErr)
	return opErr
}

// CloseDocument closes doc. Returns ErrUnsavedChanges if doc is dirty and
// force is false.
func (app *Application) CloseDocument(doc *Document, force bool) error {
	if doc == nil {
		return ErrNoActiveDocument
	}
	if doc.IsDirty() && !force {
		return ErrUnsavedChanges
	}
	if err := app.documents.Close(doc.Path); err != nil {
		return err
	}
	app.log.Info("closed", "path", doc.Path, "discarded", doc.IsDirty())
	return nil
}

// Quit returns ErrQuit, or ErrUnsavedChanges if documents are dirty and
// force is false.
func (app *Application) Quit(force bool) error {
	if !force && app.documents.HasDirty() {
		return ErrUnsavedChanges
	}
	return ErrQuit
}

// ApplyConfig installs cfg and re-applies metrics, margins and the history
// cap to every open session.
func (app *Application) ApplyConfig(cfg *config.Config) {
	cfg.Editor.ReadOnly = cfg.Editor.ReadOnly || app.opts.ReadOnly
	app.cfg = cfg
	app.recent.SetLimit(cfg.Editor.RecentFiles)

	m := cfg.Layout.Metrics()
	for _, doc := range app.documents.All() {
		doc.Engine.SetFontMetrics(m.CharWidth, m.CharHeight)
		doc.Engine.SetMargins(cfg.Layout.Margins())
		doc.Engine.SetMaxUndoEntries(cfg.History.MaxEntries)
	}
	app.log.Info("config reloaded", "path", cfg.Path)
}

// resize sizes every session to the renderer's view area.
func (app *Application) resize() {
	if app.renderer == nil {
		return
	}
	_, _, w, h := app.renderer.ViewArea()
	for _, doc := range app.documents.All() {
		doc.Engine.SetViewport(w, h)
	}
}

func (app *Application) setMessage(text string) {
	app.message = renderer.Message{Text: text}
}

func (app *Application) setError(err error) {
	app.message = renderer.Message{Text: err.Error(), Error: true}
}

// frame assembles the state painted by the renderer.
func (app *Application) frame() renderer.Frame {
	var f renderer.Frame
	active := app.documents.Active()
	for _, doc := range app.documents.All() {
		f.Tabs = append(f.Tabs, renderer.Tab{
			Title:  doc.Name,
			Dirty:  doc.IsDirty(),
			Active: doc == active,
		})
	}

	f.Message = app.message
	if app.prompt.active() {
		f.Prompt = app.prompt.view()
	}

	if active == nil {
		return f
	}
	e := active.Engine
	f.View = e
	f.Status = renderer.Status{
		Name:      active.Name,
		Size:      e.Len(),
		Dirty:     e.IsDirty(),
		ReadOnly:  e.IsReadOnly(),
		Mode:      e.Mode(),
		Position:  e.Position(),
		UndoCount: e.UndoCount(),
		RedoCount: e.RedoCount(),
	}
	warns, errs := app.logger.Counts()
	f.Status.Alerts = warns + errs
	f.Status.U32, f.Status.I32, f.Status.HasValue = e.ValueAtCursor()
	return f
}

// render paints the current state if a backend is attached.
func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	app.renderer.Render(app.frame())
}

// reportError surfaces err on the message line unless it is a quit request.
func (app *Application) reportError(err error) {
	if err == nil || errors.Is(err, ErrQuit) {
		return
	}
	app.setError(err)
}
