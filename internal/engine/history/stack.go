package history

import (
	"github.com/dshills/hexstorm/internal/engine/buffer"
	"github.com/dshills/hexstorm/internal/engine/cursor"
)

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 1000

// History manages undo/redo state for a buffer.
// History is not safe for concurrent use.
type History struct {
	undoStack []Command
	redoStack []Command

	// savedDepth is len(undoStack) at the last save. It goes negative
	// once the save point has been trimmed off the bottom of the stack.
	savedDepth int

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Commit applies cmd to buf and pushes it onto the undo stack.
// Clears the redo stack. Nothing is recorded if applying fails.
func (h *History) Commit(buf *buffer.Buffer, cmd Command) (cursor.Position, error) {
	pos, err := cmd.Apply(buf)
	if err != nil {
		return pos, err
	}

	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = nil
	h.trim()
	return pos, nil
}

// Undo reverts the last command and returns the cursor position it recorded
// before the edit. ok is false if there was nothing to undo.
func (h *History) Undo(buf *buffer.Buffer) (pos cursor.Position, ok bool, err error) {
	if len(h.undoStack) == 0 {
		return 0, false, nil
	}

	cmd := h.undoStack[len(h.undoStack)-1]
	if pos, err = cmd.Invert().Apply(buf); err != nil {
		return pos, false, err
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cmd)
	return pos, true, nil
}

// Redo reapplies the last undone command and returns the cursor position it
// recorded after the edit. ok is false if there was nothing to redo.
func (h *History) Redo(buf *buffer.Buffer) (pos cursor.Position, ok bool, err error) {
	if len(h.redoStack) == 0 {
		return 0, false, nil
	}

	cmd := h.redoStack[len(h.redoStack)-1]
	if pos, err = cmd.Apply(buf); err != nil {
		return pos, false, err
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cmd)
	return pos, true, nil
}

// MarkSaved records the current undo depth as the save point.
func (h *History) MarkSaved() {
	h.savedDepth = len(h.undoStack)
}

// IsDirty returns true if the undo depth differs from the save point.
func (h *History) IsDirty() bool {
	return len(h.undoStack) != h.savedDepth
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
// A clean session stays clean; a dirty one stays dirty until the next save.
func (h *History) Clear() {
	dirty := h.IsDirty()
	h.undoStack = nil
	h.redoStack = nil
	h.savedDepth = 0
	if dirty {
		h.savedDepth = -1
	}
}

// UndoInfo returns info about available undo operations, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.undoStack))
	for i, cmd := range h.undoStack {
		result[i] = cmd.Info()
	}
	return result
}

// RedoInfo returns info about available redo operations, oldest first.
func (h *History) RedoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.redoStack))
	for i, cmd := range h.redoStack {
		result[i] = cmd.Info()
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].Info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].Info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.maxEntries = n
	h.trim()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// trim drops the oldest undo entries beyond maxEntries and shifts the save
// point with them.
func (h *History) trim() {
	if len(h.undoStack) <= h.maxEntries {
		return
	}
	excess := len(h.undoStack) - h.maxEntries
	h.undoStack = append([]Command(nil), h.undoStack[excess:]...)
	h.savedDepth -= excess
	if h.savedDepth < 0 {
		h.savedDepth = -1
	}
}
