// Package history provides undo/redo for the hex editing engine.
//
// The history system records every edit as a Command value that knows how
// to apply itself to a buffer and how to produce its own inverse.
//
// # Commands
//
// Commands form a closed set of variants selected by Kind. The only variant
// today is KindChangeByte, a single byte replacement that also remembers the
// cursor position before and after the edit:
//
//	cmd := history.NewChangeByte(0, 0x41, 0x51, 0, 1)
//
// # History Stack
//
// The History type manages the undo and redo stacks:
//
//	h := history.NewHistory(1000) // Max 1000 undo entries
//
//	// Apply and record an edit
//	pos, err := h.Commit(buf, cmd)
//
//	// Undo/redo
//	pos, ok, err := h.Undo(buf)
//	pos, ok, err = h.Redo(buf)
//
// Committing a command applies it and discards anything that could have
// been redone. Undo and Redo on an empty stack report ok == false and leave
// the buffer untouched.
//
// # Save Point
//
// MarkSaved records the current undo depth. IsDirty reports whether the
// depth has moved away from it. Depth is compared, not content: undoing
// back to the save point makes the session clean again.
package history
