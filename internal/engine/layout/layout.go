// Package layout computes how many bytes fit on one row of a hex view and
// maps view coordinates back to cursor positions.
//
// All functions are pure: viewport size and font metrics are passed in as
// arguments on every call.
//
// A row is laid out as
//
//	[offset margin][cell]*n[gap][char]*n
//
// where each hex cell holds two digits plus padding and the ASCII column
// holds one character per byte.
package layout

import "github.com/dshills/hexstorm/internal/engine/cursor"

// Metrics are the two font measurements the layout depends on.
type Metrics struct {
	CharWidth  int
	CharHeight int
}

// Margins describe spacing around the hex and ASCII columns, in the same
// unit as Metrics.
type Margins struct {
	CellPadding   int // Extra space after the two digits of a hex cell
	OffsetDigits  int // Width of the offset column, in characters
	OffsetPadding int // Space between the offset column and the first cell
	HexASCIIGap   int // Space between the hex and ASCII columns
}

// PixelMargins returns the margins used by a proportional pixel renderer.
func PixelMargins() Margins {
	return Margins{CellPadding: 5, OffsetDigits: 8, OffsetPadding: 10, HexASCIIGap: 5}
}

// TerminalMargins returns the margins used by a character cell renderer.
func TerminalMargins() Margins {
	return Margins{CellPadding: 1, OffsetDigits: 8, OffsetPadding: 2, HexASCIIGap: 2}
}

// TerminalMetrics returns metrics for a grid where one character is one cell.
func TerminalMetrics() Metrics {
	return Metrics{CharWidth: 1, CharHeight: 1}
}

// CellWidth returns the width of one hex cell.
func CellWidth(m Metrics, g Margins) int {
	return 2*m.CharWidth + g.CellPadding
}

// OffsetMarginWidth returns the width of the offset column including padding.
func OffsetMarginWidth(m Metrics, g Margins) int {
	return g.OffsetDigits*m.CharWidth + g.OffsetPadding
}

// RowWidth returns the width needed to lay out n bytes.
func RowWidth(m Metrics, g Margins, n int) int {
	return OffsetMarginWidth(m, g) + n*CellWidth(m, g) + g.HexASCIIGap + n*m.CharWidth
}

// ASCIIColumnX returns the x coordinate of the first ASCII character in a
// row of n bytes.
func ASCIIColumnX(m Metrics, g Margins, n int) int {
	return OffsetMarginWidth(m, g) + n*CellWidth(m, g) + g.HexASCIIGap
}

// BytesPerRow returns the largest n whose row fits in width, never less than 1.
// Metrics where a byte takes no width yield 1.
func BytesPerRow(m Metrics, g Margins, width int) int {
	perByte := CellWidth(m, g) + m.CharWidth
	if m.CharWidth <= 0 || perByte <= 0 {
		return 1
	}
	fixed := OffsetMarginWidth(m, g) + g.HexASCIIGap
	if width < fixed+perByte {
		return 1
	}
	return (width - fixed) / perByte
}

// VisibleRows returns how many whole rows fit in height, never less than 1.
func VisibleRows(m Metrics, height int) int {
	if m.CharHeight <= 0 {
		return 1
	}
	rows := height / m.CharHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// HitTest maps a point in content coordinates to a cursor position.
//
// A click on a hex cell selects the high nibble, or the low nibble when it
// lands past the first digit, and switches to hex mode. A click on the ASCII
// column selects the byte and switches to ASCII mode. ok is false for
// points in the offset column, the gap, or past the ASCII column. The caller
// clamps the result against the buffer length.
func HitTest(m Metrics, g Margins, bytesPerRow, x, y int) (pos cursor.Position, mode cursor.Mode, ok bool) {
	if m.CharWidth <= 0 || m.CharHeight <= 0 || y < 0 {
		return 0, cursor.ModeHex, false
	}
	if bytesPerRow < 1 {
		bytesPerRow = 1
	}

	row := y / m.CharHeight
	x -= OffsetMarginWidth(m, g)
	if x < 0 {
		return 0, cursor.ModeHex, false
	}

	cell := CellWidth(m, g)
	if x < bytesPerRow*cell {
		col := x / cell
		p := 2 * (row*bytesPerRow + col)
		if x-col*cell >= m.CharWidth {
			p++
		}
		return cursor.Position(p), cursor.ModeHex, true
	}

	x -= bytesPerRow*cell + g.HexASCIIGap
	if x < 0 || x >= bytesPerRow*m.CharWidth {
		return 0, cursor.ModeHex, false
	}
	col := x / m.CharWidth
	return cursor.Position(2 * (row*bytesPerRow + col)), cursor.ModeASCII, true
}
