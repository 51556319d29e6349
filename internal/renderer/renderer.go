package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Rows taken by chrome around the hex view.
const (
	tabBarRows = 1
	footerRows = 2 // status line and message line
)

// Frame is everything painted in one render pass.
type Frame struct {
	Tabs    []Tab
	View    Source // nil when no document is open
	Status  Status
	Message Message
	Prompt  Prompt
}

// Renderer paints frames onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	frames  uint64
}

// New creates a renderer drawing onto b.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// Theme returns the current theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// SetTheme replaces the theme used for later frames.
func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// ViewArea returns the screen rectangle reserved for the hex view.
// Sessions size their viewport to w and h.
func (r *Renderer) ViewArea() (x, y, w, h int) {
	width, height := r.backend.Size()
	h = height - tabBarRows - footerRows
	if h < 1 {
		h = 1
	}
	return 0, tabBarRows, max(width, 1), h
}

// Render clears the screen, paints f and shows it.
func (r *Renderer) Render(f Frame) {
	width, height := r.backend.Size()
	r.backend.Clear()

	r.drawTabs(f.Tabs, width)

	x, y, w, h := r.ViewArea()
	if f.View != nil {
		r.drawView(f.View, area{x: x, y: y, w: w, h: h})
	}

	statusY := height - footerRows
	if statusY >= tabBarRows {
		line := f.Status.Line(width)
		r.fillRow(statusY, width, r.theme.Status)
		backend.DrawString(r.backend, 0, statusY, line, r.theme.Status)
	}

	msgY := height - 1
	if f.Prompt.Active() {
		text := runewidth.Truncate(f.Prompt.text(), width-1, "…")
		end := backend.DrawString(r.backend, 0, msgY, text, r.theme.Prompt)
		r.backend.ShowCursor(end, msgY)
	} else {
		style := r.theme.Message
		if f.Message.Error {
			style = r.theme.Error
		}
		backend.DrawString(r.backend, 0, msgY, runewidth.Truncate(f.Message.Text, width, "…"), style)
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frames++
}

func (r *Renderer) drawTabs(tabs []Tab, width int) {
	r.fillRow(0, width, r.theme.TabBar)
	x := 0
	for _, t := range tabs {
		if x >= width {
			break
		}
		label := runewidth.Truncate(t.label(), width-x, "…")
		style := r.theme.TabBar
		if t.Active {
			style = r.theme.ActiveTab
		}
		x = backend.DrawString(r.backend, x, 0, label, style)
	}
}

func (r *Renderer) fillRow(y, width int, style backend.Style) {
	for x := 0; x < width; x++ {
		r.backend.SetCell(x, y, backend.Cell{Rune: ' ', Style: style})
	}
}
