package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/engine/search"
	"github.com/dshills/hexstorm/internal/renderer"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// wheelRows is how far one wheel notch scrolls.
const wheelRows = 3

// moveKeys maps navigation keys to engine moves. The second entry is used
// with Ctrl held.
var moveKeys = map[backend.Key][2]engine.Direction{
	backend.KeyLeft:     {engine.MoveLeft, engine.MoveLeft},
	backend.KeyRight:    {engine.MoveRight, engine.MoveRight},
	backend.KeyUp:       {engine.MoveUp, engine.MoveUp},
	backend.KeyDown:     {engine.MoveDown, engine.MoveDown},
	backend.KeyHome:     {engine.MoveLineStart, engine.MoveBufferStart},
	backend.KeyEnd:      {engine.MoveLineEnd, engine.MoveBufferEnd},
	backend.KeyPageUp:   {engine.MovePageUp, engine.MovePageUp},
	backend.KeyPageDown: {engine.MovePageDown, engine.MovePageDown},
}

// handleKey dispatches a key event. Returns ErrQuit when the application
// should exit.
func (app *Application) handleKey(ev backend.Event) error {
	if app.prompt.active() {
		return app.handlePromptKey(ev)
	}

	pending := app.confirm
	app.confirm = confirmNone
	app.message = renderer.Message{}

	if isSaveAs(ev) {
		if doc := app.documents.Active(); doc != nil {
			app.prompt.open(promptSaveAs, doc.Path, app.recent.List())
		} else {
			app.setError(ErrNoActiveDocument)
		}
		return nil
	}

	switch ev.Key {
	case backend.KeyCtrlQ:
		return app.quitKey(pending == confirmQuit)
	case backend.KeyCtrlW:
		return app.closeKey(pending == confirmClose)
	case backend.KeyCtrlO:
		app.prompt.open(promptOpen, "", app.recent.List())
		return nil
	case backend.KeyCtrlS:
		if err := app.SaveDocument(); errors.Is(err, ErrNoActiveDocument) {
			app.setError(err)
		}
		return nil
	case backend.KeyCtrlA:
		if err := app.SaveAll(); err == nil && pending == confirmQuit {
			app.log.Info("quit", "saved", true)
			return ErrQuit
		}
		return nil
	case backend.KeyCtrlN:
		app.documents.Next()
		return nil
	case backend.KeyCtrlP:
		app.documents.Previous()
		return nil
	}

	doc := app.documents.Active()
	if doc == nil {
		return nil
	}
	e := doc.Engine

	if dirs, ok := moveKeys[ev.Key]; ok {
		if ev.Mod.Has(backend.ModCtrl) {
			e.Move(dirs[1])
		} else {
			e.Move(dirs[0])
		}
		return nil
	}

	switch ev.Key {
	case backend.KeyTab:
		e.ToggleMode()
	case backend.KeyCtrlZ:
		if ev.Mod.Has(backend.ModShift) {
			app.redo(e)
		} else if !e.Undo() {
			app.setMessage("nothing to undo")
		}
	case backend.KeyCtrlY:
		app.redo(e)
	case backend.KeyCtrlF:
		kind := promptFindHex
		if e.Mode() == engine.ModeASCII {
			kind = promptFindText
		}
		app.prompt.open(kind, app.lastFind[kind], nil)
	case backend.KeyRune:
		if isShiftedCtrl(ev, 'z') {
			app.redo(e)
			return nil
		}
		app.typeRune(e, ev.Rune)
	}
	return nil
}

func (app *Application) redo(e *engine.Engine) {
	if !e.Redo() {
		app.setMessage("nothing to redo")
	}
}

// isSaveAs matches Alt-S, and Ctrl-Shift-S on terminals that report it.
func isSaveAs(ev backend.Event) bool {
	switch ev.Key {
	case backend.KeyCtrlS:
		return ev.Mod.Has(backend.ModShift)
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModAlt) && (ev.Rune == 's' || ev.Rune == 'S') {
			return true
		}
		return isShiftedCtrl(ev, 's')
	}
	return false
}

// isShiftedCtrl matches Ctrl-Shift-<lower> delivered as a rune, which is how
// terminals with extended key reporting send it.
func isShiftedCtrl(ev backend.Event, lower rune) bool {
	if ev.Key != backend.KeyRune || !ev.Mod.Has(backend.ModCtrl) {
		return false
	}
	return ev.Rune == unicode.ToUpper(lower) ||
		(ev.Rune == lower && ev.Mod.Has(backend.ModShift))
}

func (app *Application) typeRune(e *engine.Engine, r rune) {
	ok, err := e.Type(r)
	switch {
	case errors.Is(err, engine.ErrReadOnly):
		app.setError(err)
	case !ok:
		if app.backend != nil {
			app.backend.Beep()
		}
	}
}

func (app *Application) quitKey(confirmed bool) error {
	err := app.Quit(confirmed)
	if errors.Is(err, ErrUnsavedChanges) {
		app.confirm = confirmQuit
		app.setError(errors.New(unsavedWarning(app.documents.DirtyDocuments(), "quit")))
		return nil
	}
	if errors.Is(err, ErrQuit) {
		app.log.Info("quit", "discarded", len(app.documents.DirtyDocuments()))
	}
	return err
}

func (app *Application) closeKey(confirmed bool) error {
	doc := app.documents.Active()
	err := app.CloseDocument(doc, confirmed)
	if errors.Is(err, ErrUnsavedChanges) {
		app.confirm = confirmClose
		app.setError(errors.New(unsavedWarning([]*Document{doc}, "close")))
		return nil
	}
	if err == nil {
		app.setMessage("closed " + doc.Name)
	}
	return nil
}

func unsavedWarning(docs []*Document, verb string) string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	msg := "unsaved changes in " + strings.Join(names, ", ") + "; press again to " + verb
	if verb == "quit" {
		msg += ", Ctrl-A to save all and quit"
	}
	return msg
}

func (app *Application) handlePromptKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape:
		app.prompt.close()
	case backend.KeyBackspace:
		app.prompt.backspace()
	case backend.KeyRune:
		app.prompt.insert(ev.Rune)
	case backend.KeyUp:
		app.prompt.older()
	case backend.KeyDown:
		app.prompt.newer()
	case backend.KeyEnter:
		if app.prompt.takesPath() {
			app.submitPath()
			return nil
		}
		app.find(true)
	case backend.KeyCtrlR:
		if !app.prompt.takesPath() {
			app.find(false)
		}
	}
	return nil
}

// submitPath closes a path prompt and opens or saves to the entered path.
func (app *Application) submitPath() {
	kind := app.prompt.kind
	path := strings.TrimSpace(app.prompt.text())
	app.prompt.close()
	if path == "" {
		return
	}
	if kind == promptSaveAs {
		_ = app.SaveDocumentAs(path)
		return
	}
	_, _ = app.OpenFile(path)
}

// find searches the active session with the prompt input. The prompt stays
// open so Enter and Ctrl-R can repeat.
func (app *Application) find(forward bool) {
	doc := app.documents.Active()
	if doc == nil {
		app.setError(ErrNoActiveDocument)
		return
	}
	needle := app.prompt.needle()
	if err := search.Validate(needle); err != nil {
		app.setError(err)
		return
	}
	app.lastFind[app.prompt.kind] = app.prompt.text()

	var found bool
	if forward {
		found = doc.Engine.FindNext(needle)
	} else {
		found = doc.Engine.FindPrevious(needle)
	}
	if !found {
		app.setError(ErrNotFound)
		return
	}
	app.setMessage(fmt.Sprintf("%d matches", doc.Engine.CountMatches(needle)))
}

// handleMouse moves the cursor on a left click and scrolls on the wheel.
func (app *Application) handleMouse(ev backend.Event) {
	doc := app.documents.Active()
	if doc == nil || app.renderer == nil {
		return
	}
	e := doc.Engine
	vx, vy, w, h := app.renderer.ViewArea()

	switch ev.MouseButton {
	case backend.MouseLeft:
		x, y := ev.MouseX-vx, ev.MouseY-vy
		if x >= 0 && y >= 0 && x < w && y < h {
			e.Click(x, y)
		}
	case backend.MouseWheelUp:
		e.SetScrollTop(e.ScrollTop() - wheelRows)
	case backend.MouseWheelDown:
		e.SetScrollTop(e.ScrollTop() + wheelRows)
	}
}
