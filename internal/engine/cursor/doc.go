// Package cursor provides the nibble-granular cursor used by the hex editor.
//
// The cursor package handles:
//
//   - Nibble addressing with the Position type
//   - The Hex/ASCII edit mode toggle
//   - Saturating navigation by nibble, row, page and buffer
//
// Address Model:
//
// A Position counts half-bytes. Two consecutive positions address the high
// and low nibble of one byte:
//
//	byte offset = position / 2
//	nibble      = position % 2   (0 = high, 1 = low)
//
// Valid positions lie in [0, 2*length-1]. An empty buffer has the single
// valid position 0.
//
// Basic usage:
//
//	c := cursor.New(10)            // ten byte buffer, position 0, hex mode
//	c = c.MoveTo(10)               // byte 5, high nibble
//	c = c.MoveDown(4)              // position 18, byte 9
//	c = c.MoveDown(4)              // 26 is past the end, clamped to 19
//	c = c.ToggleMode()             // ASCII mode
//
// Every transform returns a new Cursor; the receiver is never modified.
// Results are clamped into the valid range, so moves never fail.
package cursor
