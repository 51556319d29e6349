package history

import (
	"fmt"
	"time"

	"github.com/dshills/hexstorm/internal/engine/buffer"
	"github.com/dshills/hexstorm/internal/engine/cursor"
)

// Kind identifies a command variant.
type Kind int

const (
	// KindChangeByte replaces one byte.
	KindChangeByte Kind = iota
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindChangeByte:
		return "change-byte"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is a reversible edit.
type Command struct {
	Kind Kind

	// Edit data
	Offset   int  // Byte that was modified
	OldValue byte // Value before the edit (for undo)
	NewValue byte // Value after the edit (for redo)

	// Cursor state for restore
	OldCursor cursor.Position // Cursor position before the edit
	NewCursor cursor.Position // Cursor position after the edit

	// Metadata
	Timestamp time.Time
}

// NewChangeByte creates a command that replaces the byte at offset.
func NewChangeByte(offset int, oldValue, newValue byte, oldCursor, newCursor cursor.Position) Command {
	return Command{
		Kind:      KindChangeByte,
		Offset:    offset,
		OldValue:  oldValue,
		NewValue:  newValue,
		OldCursor: oldCursor,
		NewCursor: newCursor,
		Timestamp: time.Now(),
	}
}

// Apply performs the command on buf and returns the resulting cursor position.
func (c Command) Apply(buf *buffer.Buffer) (cursor.Position, error) {
	switch c.Kind {
	case KindChangeByte:
		if err := buf.Set(c.Offset, c.NewValue); err != nil {
			return c.OldCursor, fmt.Errorf("apply %s at %d: %w", c.Kind, c.Offset, err)
		}
		return c.NewCursor, nil
	default:
		return c.OldCursor, fmt.Errorf("apply: unknown command %s", c.Kind)
	}
}

// Invert returns a command that undoes this one.
func (c Command) Invert() Command {
	return Command{
		Kind:      c.Kind,
		Offset:    c.Offset,
		OldValue:  c.NewValue,
		NewValue:  c.OldValue,
		OldCursor: c.NewCursor,
		NewCursor: c.OldCursor,
		Timestamp: c.Timestamp,
	}
}

// IsNoop returns true if applying the command leaves the buffer unchanged.
func (c Command) IsNoop() bool {
	return c.OldValue == c.NewValue
}

// Description returns a human-readable description.
func (c Command) Description() string {
	switch c.Kind {
	case KindChangeByte:
		return fmt.Sprintf("Change byte %08X: %02X -> %02X", c.Offset, c.OldValue, c.NewValue)
	default:
		return c.Kind.String()
	}
}

// Info returns read-only info about the command.
func (c Command) Info() OperationInfo {
	return OperationInfo{
		Description: c.Description(),
		Timestamp:   c.Timestamp,
		Offset:      c.Offset,
	}
}
