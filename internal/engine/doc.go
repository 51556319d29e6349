// Package engine provides the core hex editing engine for hexstorm.
//
// The engine package serves as the main facade, combining the byte buffer,
// the nibble cursor, undo/redo and search into one editing session that a
// front end drives through its command methods.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: fixed-length byte storage with bounds-checked access
//   - cursor: nibble addressing, edit mode and saturating navigation
//   - history: reversible byte edits with undo/redo and a save point
//   - search: forward and backward byte pattern search
//   - layout: bytes-per-row solving and click hit-testing
//
// # Basic Usage
//
//	e := engine.New([]byte("ABC"))
//
//	// Type a hex digit over the high nibble of byte 0
//	e.Type('5') // buffer is now 51 42 43, cursor at position 1
//
//	// Undo restores both the byte and the cursor
//	e.Undo() // 41 42 43, cursor at position 0
//
//	// Switch to ASCII mode and type a character
//	e.ToggleMode()
//	e.Type('Z') // 5A 42 43, cursor at position 2
//
// # Layout
//
// Row navigation depends on how many bytes fit in a row. The engine stores
// the viewport size and font metrics it was given and re-solves the row width
// whenever one of them changes:
//
//	e.SetViewport(100, 40)
//	e.SetFontMetrics(1, 1)
//	e.Move(engine.MoveDown) // moves by BytesPerRow() bytes
//
// # Events
//
// Observers are called synchronously after each command:
//
//	cancel := e.Observe(func(ev engine.Event) {
//	    if ev.Type == engine.EventScrollTo {
//	        view.ScrollTo(ev.Row)
//	    }
//	})
//	defer cancel()
//
// # Saving
//
// Save hands the whole buffer to a Store. A failed save returns an error
// wrapping ErrIO and leaves the session dirty:
//
//	err := e.Save(engine.StoreFunc(func(data []byte) error {
//	    return os.WriteFile(path, data, 0o644)
//	}))
//
// # Thread Safety
//
// An Engine is owned by a single goroutine. It does no locking.
package engine
