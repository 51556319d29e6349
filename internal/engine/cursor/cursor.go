package cursor

import "fmt"

// Position is a nibble index into a byte buffer.
type Position int

// ByteOffset returns the byte addressed by p.
func (p Position) ByteOffset() int {
	return int(p) / 2
}

// Nibble returns which half of the byte p addresses.
func (p Position) Nibble() Nibble {
	return Nibble(int(p) % 2)
}

// Nibble selects one half of a byte.
type Nibble int

const (
	// NibbleHigh is the upper 4 bits.
	NibbleHigh Nibble = iota
	// NibbleLow is the lower 4 bits.
	NibbleLow
)

// Mode determines how typed characters are interpreted.
type Mode int

const (
	// ModeHex edits one nibble per hex digit.
	ModeHex Mode = iota
	// ModeASCII edits one byte per character.
	ModeASCII
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "HEX"
	case ModeASCII:
		return "ASCII"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Cursor is the caret of a hex editing session.
// Cursor is an immutable value type.
type Cursor struct {
	position Position
	mode     Mode
	length   int
}

// New creates a cursor at position 0 in hex mode for a buffer of length bytes.
func New(length int) Cursor {
	if length < 0 {
		length = 0
	}
	return Cursor{length: length}
}

// Position returns the nibble position.
func (c Cursor) Position() Position {
	return c.position
}

// Mode returns the edit mode.
func (c Cursor) Mode() Mode {
	return c.mode
}

// Length returns the buffer length the cursor is clamped against.
func (c Cursor) Length() int {
	return c.length
}

// ByteOffset returns the byte under the cursor.
func (c Cursor) ByteOffset() int {
	return c.position.ByteOffset()
}

// Nibble returns the addressed half of the byte under the cursor.
func (c Cursor) Nibble() Nibble {
	return c.position.Nibble()
}

// Row returns the display row of the cursor for the given row width.
func (c Cursor) Row(bytesPerRow int) int {
	return int(c.position) / rowSpan(bytesPerRow)
}

// MaxPosition returns the largest valid position.
func (c Cursor) MaxPosition() Position {
	if c.length == 0 {
		return 0
	}
	return Position(2*c.length - 1)
}

// Clamp returns p saturated into [0, MaxPosition()].
func (c Cursor) Clamp(p Position) Position {
	if p < 0 {
		return 0
	}
	if limit := c.MaxPosition(); p > limit {
		return limit
	}
	return p
}

// WithLength returns a cursor for a buffer of a different length,
// re-clamping the position.
func (c Cursor) WithLength(length int) Cursor {
	if length < 0 {
		length = 0
	}
	c.length = length
	c.position = c.Clamp(c.position)
	return c
}

// WithMode returns a cursor with the given edit mode.
func (c Cursor) WithMode(m Mode) Cursor {
	c.mode = m
	return c
}

// ToggleMode returns a cursor with the other edit mode. Position is unchanged.
func (c Cursor) ToggleMode() Cursor {
	if c.mode == ModeHex {
		c.mode = ModeASCII
	} else {
		c.mode = ModeHex
	}
	return c
}

// MoveTo returns a cursor at raw, clamped.
func (c Cursor) MoveTo(raw Position) Cursor {
	c.position = c.Clamp(raw)
	return c
}

// MoveBy returns a cursor shifted by delta nibbles, clamped.
func (c Cursor) MoveBy(delta int) Cursor {
	return c.MoveTo(c.position + Position(delta))
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d, byte %d, %s)", c.position, c.ByteOffset(), c.mode)
}

// Equals returns true if two cursors have the same position and mode.
func (c Cursor) Equals(other Cursor) bool {
	return c.position == other.position && c.mode == other.mode
}

// rowSpan is the number of positions in one display row.
func rowSpan(bytesPerRow int) int {
	if bytesPerRow < 1 {
		bytesPerRow = 1
	}
	return 2 * bytesPerRow
}
