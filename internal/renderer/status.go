package renderer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/hexstorm/internal/engine/cursor"
)

// Status describes the active document for the status line.
type Status struct {
	Name     string
	Size     int
	Dirty    bool
	ReadOnly bool
	Mode     cursor.Mode
	Position cursor.Position

	// Little-endian 32-bit value at the cursor, when four bytes remain.
	U32      uint32
	I32      int32
	HasValue bool

	UndoCount int
	RedoCount int

	// Alerts is the number of captured log warnings and errors.
	Alerts int
}

// Left returns the file part of the status line.
func (s Status) Left() string {
	var sb strings.Builder
	sb.WriteString(" ")
	if s.Name == "" {
		sb.WriteString("[no file]")
	} else {
		sb.WriteString(s.Name)
	}
	if s.Dirty {
		sb.WriteString(" [+]")
	}
	if s.ReadOnly {
		sb.WriteString(" [RO]")
	}
	sb.WriteString("  ")
	sb.WriteString(humanize.Bytes(uint64(max(s.Size, 0))))
	return sb.String()
}

// Right returns the cursor part of the status line.
func (s Status) Right() string {
	nibble := "H"
	if s.Position.Nibble() == cursor.NibbleLow {
		nibble = "L"
	}
	parts := []string{
		s.Mode.String(),
		fmt.Sprintf("%08X.%s", s.Position.ByteOffset(), nibble),
	}
	if s.HasValue {
		parts = append(parts, fmt.Sprintf("u32 %d", s.U32), fmt.Sprintf("i32 %d", s.I32))
	}
	parts = append(parts, fmt.Sprintf("undo %d/%d", s.UndoCount, s.RedoCount))
	if s.Alerts > 0 {
		parts = append(parts, fmt.Sprintf("!%d", s.Alerts))
	}
	return strings.Join(parts, "  ") + " "
}

// Line fits the status into width columns. The right part wins when space
// runs out; the left part is truncated first.
func (s Status) Line(width int) string {
	right := s.Right()
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.Truncate(right, width, "…")
	}
	left := runewidth.Truncate(s.Left(), width-rw-1, "…")
	gap := width - rw - runewidth.StringWidth(left)
	return left + strings.Repeat(" ", gap) + right
}

// Tab is one entry in the tab bar.
type Tab struct {
	Title  string
	Dirty  bool
	Active bool
}

func (t Tab) label() string {
	if t.Dirty {
		return " " + t.Title + "* "
	}
	return " " + t.Title + " "
}

// Message is a one-line notice shown under the status line.
type Message struct {
	Text  string
	Error bool
}

// Prompt is an input line shown in place of the message.
type Prompt struct {
	Label string
	Input string
}

// Active reports whether the prompt should be shown.
func (p Prompt) Active() bool {
	return p.Label != ""
}

func (p Prompt) text() string {
	return p.Label + ": " + p.Input
}
