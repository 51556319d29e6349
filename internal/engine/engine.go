package engine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/hexstorm/internal/engine/buffer"
	"github.com/dshills/hexstorm/internal/engine/cursor"
	"github.com/dshills/hexstorm/internal/engine/history"
	"github.com/dshills/hexstorm/internal/engine/layout"
	"github.com/dshills/hexstorm/internal/engine/search"
)

// Re-export commonly used types for convenience.
type (
	// Position is a nibble index into the buffer.
	Position = cursor.Position

	// Mode is the Hex/ASCII edit mode.
	Mode = cursor.Mode

	// OperationInfo describes an undo or redo entry.
	OperationInfo = history.OperationInfo
)

// Re-export constants.
const (
	ModeHex   = cursor.ModeHex
	ModeASCII = cursor.ModeASCII
)

// Direction selects a cursor navigation command.
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
	MoveUp
	MoveDown
	MoveLineStart
	MoveLineEnd
	MoveBufferStart
	MoveBufferEnd
	MovePageUp
	MovePageDown
)

// Engine is one hex editing session.
// It combines the byte buffer, the cursor, undo/redo and search with the
// layout state needed for row navigation.
//
// Engine is not safe for concurrent use; drive it from a single goroutine.
type Engine struct {
	// Core components
	buf     *buffer.Buffer
	cur     cursor.Cursor
	history *history.History

	// Layout inputs, stored explicitly and re-solved on every change
	metrics layout.Metrics
	margins layout.Margins
	width   int
	height  int

	// Derived layout
	bytesPerRow int
	visibleRows int
	scrollTop   int

	// lastMatch is the byte offset of the most recent search hit, or -1.
	// lastNeedle is the pattern that produced it.
	lastMatch  int
	lastNeedle []byte

	// Configuration
	maxUndoEntries int
	readOnly       bool
	initMode       cursor.Mode

	observers []Observer
}

// New creates an Engine that takes ownership of data.
func New(data []byte, opts ...Option) *Engine {
	e := newEngine(opts)
	e.buf = buffer.NewBuffer(data)
	e.init()
	return e
}

// NewFromReader creates an Engine from an io.Reader.
// No engine is returned if reading fails.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	buf, err := buffer.NewBufferFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	e.buf = buf
	e.init()
	return e, nil
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		metrics:        layout.TerminalMetrics(),
		margins:        layout.TerminalMargins(),
		width:          DefaultViewportWidth,
		height:         DefaultViewportHeight,
		maxUndoEntries: DefaultMaxUndoEntries,
		lastMatch:      -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) init() {
	e.cur = cursor.New(e.buf.Len()).WithMode(e.initMode)
	e.history = history.NewHistory(e.maxUndoEntries)
	e.relayout()
}

// ============================================================================
// Observers
// ============================================================================

// Observe registers o and returns a function that removes it.
func (e *Engine) Observe(o Observer) (cancel func()) {
	if o == nil {
		return func() {}
	}
	e.observers = append(e.observers, o)
	idx := len(e.observers) - 1
	return func() {
		if idx < len(e.observers) {
			e.observers[idx] = nil
		}
	}
}

func (e *Engine) emit(ev Event) {
	for _, o := range e.observers {
		if o != nil {
			o(ev)
		}
	}
}

// ============================================================================
// Read Operations
// ============================================================================

// Len returns the buffer length in bytes.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// IsEmpty returns true if the buffer holds no bytes.
func (e *Engine) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// ByteAt returns the byte at offset.
func (e *Engine) ByteAt(offset int) (byte, error) {
	return e.buf.Get(offset)
}

// Slice returns a read-only view of the bytes in [start, end).
func (e *Engine) Slice(start, end int) ([]byte, error) {
	return e.buf.Slice(start, end)
}

// Bytes returns the full buffer contents. The slice must not be modified.
func (e *Engine) Bytes() []byte {
	return e.buf.Bytes()
}

// Revision returns the buffer revision counter.
func (e *Engine) Revision() uint64 {
	return e.buf.Revision()
}

// ValueAtCursor returns the little-endian 32-bit value starting at the byte
// under the cursor. ok is false when fewer than four bytes remain.
func (e *Engine) ValueAtCursor() (u uint32, i int32, ok bool) {
	off := e.cur.ByteOffset()
	u, err := e.buf.ReadU32LE(off)
	if err != nil {
		return 0, 0, false
	}
	i, _ = e.buf.ReadI32LE(off)
	return u, i, true
}

// ============================================================================
// Cursor
// ============================================================================

// Cursor returns the current cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cur
}

// Position returns the cursor's nibble position.
func (e *Engine) Position() Position {
	return e.cur.Position()
}

// Mode returns the current edit mode.
func (e *Engine) Mode() Mode {
	return e.cur.Mode()
}

// MoveTo places the cursor at pos, clamped into the buffer.
func (e *Engine) MoveTo(pos Position) {
	e.setCursor(e.cur.MoveTo(pos))
}

// Move applies a navigation command.
func (e *Engine) Move(dir Direction) {
	c := e.cur
	bpr := e.bytesPerRow
	switch dir {
	case MoveLeft:
		c = c.MoveLeft()
	case MoveRight:
		c = c.MoveRight()
	case MoveUp:
		c = c.MoveUp(bpr)
	case MoveDown:
		c = c.MoveDown(bpr)
	case MoveLineStart:
		c = c.MoveLineStart(bpr)
	case MoveLineEnd:
		c = c.MoveLineEnd(bpr)
	case MoveBufferStart:
		c = c.MoveBufferStart()
	case MoveBufferEnd:
		c = c.MoveBufferEnd()
	case MovePageUp:
		c = c.MovePageUp(bpr, e.visibleRows)
	case MovePageDown:
		c = c.MovePageDown(bpr, e.visibleRows)
	}
	e.setCursor(c)
}

// ToggleMode switches between hex and ASCII editing.
func (e *Engine) ToggleMode() {
	e.cur = e.cur.ToggleMode()
	e.emit(Event{Type: EventModeChanged})
}

// Click moves the cursor to the cell under the view point (x, y).
// Returns false if the point is not over a byte.
func (e *Engine) Click(x, y int) bool {
	contentY := y + e.scrollTop*e.metrics.CharHeight
	pos, mode, ok := layout.HitTest(e.metrics, e.margins, e.bytesPerRow, x, contentY)
	if !ok || e.buf.IsEmpty() {
		return false
	}
	if mode != e.cur.Mode() {
		e.cur = e.cur.WithMode(mode)
		e.emit(Event{Type: EventModeChanged})
	}
	e.setCursor(e.cur.MoveTo(pos))
	return true
}

// setCursor installs c, notifying observers and scrolling if it moved.
func (e *Engine) setCursor(c cursor.Cursor) {
	if c.Position() == e.cur.Position() {
		e.cur = c
		return
	}
	e.cur = c
	e.lastMatch = -1
	e.emit(Event{Type: EventCursorMoved})
	e.scrollToCursor()
}

// scrollToCursor adjusts scrollTop so the cursor row is visible.
func (e *Engine) scrollToCursor() {
	row := e.cur.Row(e.bytesPerRow)
	switch {
	case row < e.scrollTop:
		e.scrollTop = row
	case row >= e.scrollTop+e.visibleRows:
		e.scrollTop = row - e.visibleRows + 1
	default:
		return
	}
	e.emit(Event{Type: EventScrollTo, Row: e.scrollTop})
}

// ============================================================================
// Editing
// ============================================================================

// Type applies one typed character at the cursor.
//
// In hex mode only hex digits are accepted; the digit replaces the addressed
// nibble and the cursor advances one nibble. In ASCII mode the character
// replaces the whole byte and the cursor advances to the next byte. Returns
// false if the character was not applicable.
func (e *Engine) Type(r rune) (bool, error) {
	if e.readOnly {
		return false, ErrReadOnly
	}
	if e.buf.IsEmpty() {
		return false, nil
	}

	pos := e.cur.Position()
	off := e.cur.ByteOffset()
	old, err := e.buf.Get(off)
	if err != nil {
		panic(fmt.Sprintf("engine: cursor %d outside buffer of %d bytes: %v", pos, e.buf.Len(), err))
	}

	var value byte
	var next Position
	switch e.cur.Mode() {
	case cursor.ModeHex:
		digit, ok := hexDigit(r)
		if !ok {
			return false, nil
		}
		if e.cur.Nibble() == cursor.NibbleHigh {
			value = digit<<4 | old&0x0F
		} else {
			value = old&0xF0 | digit
		}
		next = pos + 1
	case cursor.ModeASCII:
		if r < 0 || r > 0xFF {
			return false, nil
		}
		value = byte(r)
		next = Position(2*off + 2)
	default:
		return false, nil
	}

	e.commit(history.NewChangeByte(off, old, value, pos, e.cur.Clamp(next)))
	return true, nil
}

// commit records cmd and moves the cursor to its target.
func (e *Engine) commit(cmd history.Command) {
	pos, err := e.history.Commit(e.buf, cmd)
	if err != nil {
		panic(fmt.Sprintf("engine: commit %s: %v", cmd.Description(), err))
	}
	e.emit(Event{Type: EventContentChanged})
	e.setCursor(e.cur.MoveTo(pos))
}

// Undo reverts the last edit and restores the cursor recorded with it.
// Returns false if there was nothing to undo.
func (e *Engine) Undo() bool {
	pos, ok, err := e.history.Undo(e.buf)
	if err != nil {
		panic(fmt.Sprintf("engine: undo: %v", err))
	}
	if !ok {
		return false
	}
	e.emit(Event{Type: EventContentChanged})
	e.setCursor(e.cur.MoveTo(pos))
	return true
}

// Redo reapplies the last undone edit.
// Returns false if there was nothing to redo.
func (e *Engine) Redo() bool {
	pos, ok, err := e.history.Redo(e.buf)
	if err != nil {
		panic(fmt.Sprintf("engine: redo: %v", err))
	}
	if !ok {
		return false
	}
	e.emit(Event{Type: EventContentChanged})
	e.setCursor(e.cur.MoveTo(pos))
	return true
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoCount returns the number of undo entries.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}

// RedoCount returns the number of redo entries.
func (e *Engine) RedoCount() int {
	return e.history.RedoCount()
}

// PeekUndo describes the edit the next Undo would revert.
func (e *Engine) PeekUndo() (OperationInfo, bool) {
	return e.history.PeekUndo()
}

// PeekRedo describes the edit the next Redo would reapply.
func (e *Engine) PeekRedo() (OperationInfo, bool) {
	return e.history.PeekRedo()
}

// SetMaxUndoEntries changes the undo depth, dropping the oldest entries.
func (e *Engine) SetMaxUndoEntries(n int) {
	e.history.SetMaxEntries(n)
}

// ClearHistory removes all undo/redo history.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// IsDirty returns true if there are edits since the last save.
func (e *Engine) IsDirty() bool {
	return e.history.IsDirty()
}

// IsReadOnly returns true if the engine rejects edits.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// Save hands the full buffer to store. On failure the returned error wraps
// ErrIO and the dirty state is unchanged.
func (e *Engine) Save(store Store) error {
	if err := store.Write(e.buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	e.history.MarkSaved()
	e.emit(Event{Type: EventSaved})
	return nil
}

// ============================================================================
// Search
// ============================================================================

// FindNext moves the cursor to the next occurrence of needle, starting at
// the byte under the cursor. Repeating the call with the same needle from a
// match it just found continues past that match. Returns false if there is
// none.
func (e *Engine) FindNext(needle []byte) bool {
	start := e.cur.ByteOffset()
	if e.lastMatch >= 0 && e.cur.Position() == Position(2*e.lastMatch) &&
		bytes.Equal(needle, e.lastNeedle) {
		start = e.lastMatch + 1
	}
	off, ok := search.FindNext(e.buf, start, needle)
	if !ok {
		return false
	}
	e.jumpToMatch(off, needle)
	return true
}

// FindPrevious moves the cursor to the nearest occurrence of needle that
// starts before the byte under the cursor. Returns false if there is none.
func (e *Engine) FindPrevious(needle []byte) bool {
	off, ok := search.FindPrevious(e.buf, e.cur.ByteOffset(), needle)
	if !ok {
		return false
	}
	e.jumpToMatch(off, needle)
	return true
}

// CountMatches returns the number of occurrences of needle in the buffer.
func (e *Engine) CountMatches(needle []byte) int {
	return search.CountMatches(e.buf, needle)
}

func (e *Engine) jumpToMatch(off int, needle []byte) {
	e.setCursor(e.cur.MoveTo(Position(2 * off)))
	e.lastMatch = off
	e.lastNeedle = bytes.Clone(needle)
}

// ============================================================================
// Layout
// ============================================================================

// SetViewport sets the view size and re-solves the row layout.
func (e *Engine) SetViewport(width, height int) {
	e.width = width
	e.height = height
	e.relayout()
}

// SetViewportWidth sets the view width and re-solves the row layout.
func (e *Engine) SetViewportWidth(width int) {
	e.width = width
	e.relayout()
}

// SetFontMetrics sets the character cell size and re-solves the row layout.
func (e *Engine) SetFontMetrics(cellWidth, cellHeight int) {
	e.metrics = layout.Metrics{CharWidth: cellWidth, CharHeight: cellHeight}
	e.relayout()
}

// SetMargins sets the row margins and re-solves the row layout.
func (e *Engine) SetMargins(g layout.Margins) {
	e.margins = g
	e.relayout()
}

// SetScrollTop sets the first visible row, clamped to the rows that exist.
func (e *Engine) SetScrollTop(row int) {
	if last := e.RowCount() - 1; row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}
	e.scrollTop = row
}

// ScrollTop returns the first visible row.
func (e *Engine) ScrollTop() int {
	return e.scrollTop
}

// BytesPerRow returns the solved row width in bytes.
func (e *Engine) BytesPerRow() int {
	return e.bytesPerRow
}

// VisibleRows returns the number of rows that fit in the viewport.
func (e *Engine) VisibleRows() int {
	return e.visibleRows
}

// RowCount returns the number of rows needed to show the buffer, at least 1.
func (e *Engine) RowCount() int {
	n := (e.buf.Len() + e.bytesPerRow - 1) / e.bytesPerRow
	if n < 1 {
		return 1
	}
	return n
}

// Metrics returns the font metrics in use.
func (e *Engine) Metrics() layout.Metrics {
	return e.metrics
}

// Margins returns the row margins in use.
func (e *Engine) Margins() layout.Margins {
	return e.margins
}

func (e *Engine) relayout() {
	e.bytesPerRow = layout.BytesPerRow(e.metrics, e.margins, e.width)
	e.visibleRows = layout.VisibleRows(e.metrics, e.height)
	e.SetScrollTop(e.scrollTop)
	e.scrollToCursor()
}

func hexDigit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}
