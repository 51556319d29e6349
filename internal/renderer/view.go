package renderer

import (
	"fmt"
	"unicode"

	"github.com/dshills/hexstorm/internal/engine/cursor"
	"github.com/dshills/hexstorm/internal/engine/layout"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Source provides the state needed to paint a hex view.
// *engine.Engine satisfies it.
type Source interface {
	Len() int
	Slice(start, end int) ([]byte, error)
	Cursor() cursor.Cursor
	ScrollTop() int
	BytesPerRow() int
	VisibleRows() int
	Metrics() layout.Metrics
	Margins() layout.Margins
}

// area is a clipping rectangle in screen cells.
type area struct {
	x, y, w, h int
}

func (a area) contains(x, y int) bool {
	return x >= a.x && x < a.x+a.w && y >= a.y && y < a.y+a.h
}

func (r *Renderer) put(a area, x, y int, ch rune, style backend.Style) {
	if a.contains(x, y) {
		r.backend.SetCell(x, y, backend.Cell{Rune: ch, Style: style})
	}
}

// drawView paints src into a. Coordinates inside the view follow the
// layout package, offset by the area origin.
func (r *Renderer) drawView(src Source, a area) {
	m := src.Metrics()
	g := src.Margins()
	if m.CharWidth <= 0 || m.CharHeight <= 0 {
		return
	}
	bpr := src.BytesPerRow()
	if bpr < 1 {
		bpr = 1
	}
	cellW := layout.CellWidth(m, g)
	hexX := a.x + layout.OffsetMarginWidth(m, g)
	asciiX := a.x + layout.ASCIIColumnX(m, g, bpr)

	top := src.ScrollTop()
	for i := 0; i < src.VisibleRows(); i++ {
		row := top + i
		start := row * bpr
		if start >= src.Len() {
			break
		}
		end := min(start+bpr, src.Len())
		data, err := src.Slice(start, end)
		if err != nil {
			break
		}
		y := a.y + i*m.CharHeight

		label := fmt.Sprintf("%0*X", g.OffsetDigits, start)
		for k, ch := range label {
			r.put(a, a.x+k*m.CharWidth, y, ch, r.theme.Offset)
		}
		for col, b := range data {
			digits := fmt.Sprintf("%02X", b)
			x := hexX + col*cellW
			r.put(a, x, y, rune(digits[0]), r.theme.Hex)
			r.put(a, x+m.CharWidth, y, rune(digits[1]), r.theme.Hex)
			r.put(a, asciiX+col*m.CharWidth, y, printable(b), r.theme.ASCII)
		}
	}

	r.drawCaret(src, a, hexX, asciiX)
}

// drawCaret fills the addressed glyphs in the active column and outlines
// the same byte in the other column.
func (r *Renderer) drawCaret(src Source, a area, hexX, asciiX int) {
	if src.Len() == 0 {
		return
	}
	m := src.Metrics()
	cellW := layout.CellWidth(m, src.Margins())
	bpr := max(src.BytesPerRow(), 1)
	cur := src.Cursor()

	off := cur.ByteOffset()
	row := off/bpr - src.ScrollTop()
	if row < 0 || row >= src.VisibleRows() {
		return
	}
	col := off % bpr
	y := a.y + row*m.CharHeight
	x := hexX + col*cellW
	ax := asciiX + col*m.CharWidth

	b, err := src.Slice(off, off+1)
	if err != nil {
		return
	}
	digits := fmt.Sprintf("%02X", b[0])
	ch := printable(b[0])

	if cur.Mode() == cursor.ModeHex {
		n := int(cur.Nibble())
		r.put(a, x+n*m.CharWidth, y, rune(digits[n]), r.theme.Caret)
		r.put(a, ax, y, ch, r.theme.Shadow)
		return
	}
	r.put(a, x, y, rune(digits[0]), r.theme.Shadow)
	r.put(a, x+m.CharWidth, y, rune(digits[1]), r.theme.Shadow)
	r.put(a, ax, y, ch, r.theme.Caret)
}

// printable returns the glyph shown for b in the ASCII column.
// Control and other non-printing values show as '.'.
func printable(b byte) rune {
	ch := rune(b)
	if !unicode.IsPrint(ch) {
		return '.'
	}
	return ch
}
