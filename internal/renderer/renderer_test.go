package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/engine/cursor"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

func setup(t *testing.T, data []byte) (*backend.NullBackend, *Renderer, *engine.Engine) {
	t.Helper()
	b := backend.NewNullBackend(28, 8)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r := New(b, DefaultTheme())
	_, _, w, h := r.ViewArea()
	e := engine.New(data, engine.WithViewport(w, h))
	return b, r, e
}

func TestViewArea(t *testing.T) {
	_, r, e := setup(t, nil)
	x, y, w, h := r.ViewArea()
	if x != 0 || y != 1 || w != 28 || h != 5 {
		t.Errorf("ViewArea = %d,%d,%d,%d", x, y, w, h)
	}
	if e.BytesPerRow() != 4 {
		t.Errorf("BytesPerRow = %d, want 4", e.BytesPerRow())
	}
}

func TestRenderRows(t *testing.T) {
	b, r, e := setup(t, []byte("ABCDEFGH\x00\x01"))
	r.Render(Frame{View: e})

	tests := []struct {
		y    int
		want string
	}{
		{1, "00000000  41 42 43 44   ABCD"},
		{2, "00000004  45 46 47 48   EFGH"},
		{3, "00000008  00 01" + strings.Repeat(" ", 9) + "..  "},
		{4, strings.Repeat(" ", 28)},
	}
	for _, tt := range tests {
		if got := b.Row(tt.y); got != tt.want {
			t.Errorf("Row(%d) = %q, want %q", tt.y, got, tt.want)
		}
	}
	if r.FrameCount() != 1 {
		t.Errorf("FrameCount = %d, want 1", r.FrameCount())
	}
}

func TestRenderScrolled(t *testing.T) {
	data := make([]byte, 64)
	b, r, e := setup(t, data)
	e.SetScrollTop(3)
	r.Render(Frame{View: e})
	if got := b.Row(1)[:8]; got != "0000000C" {
		t.Errorf("first offset = %q, want 0000000C", got)
	}
}

func TestCaretHexMode(t *testing.T) {
	b, r, e := setup(t, []byte("ABCD"))
	theme := r.Theme()

	r.Render(Frame{View: e})
	if got := b.GetCell(10, 1); got.Style != theme.Caret || got.Rune != '4' {
		t.Errorf("high nibble cell = %+v", got)
	}
	if got := b.GetCell(24, 1); got.Style != theme.Shadow {
		t.Errorf("ascii shadow = %+v", got)
	}

	e.Move(engine.MoveRight)
	r.Render(Frame{View: e})
	if got := b.GetCell(11, 1); got.Style != theme.Caret || got.Rune != '1' {
		t.Errorf("low nibble cell = %+v", got)
	}
	if got := b.GetCell(10, 1); got.Style != theme.Hex {
		t.Errorf("high nibble no longer caret = %+v", got)
	}
}

func TestCaretASCIIMode(t *testing.T) {
	b, r, e := setup(t, []byte("ABCD"))
	theme := r.Theme()
	e.ToggleMode()
	e.MoveTo(2)

	r.Render(Frame{View: e})
	if got := b.GetCell(25, 1); got.Style != theme.Caret || got.Rune != 'B' {
		t.Errorf("ascii caret = %+v", got)
	}
	if got := b.GetCell(13, 1); got.Style != theme.Shadow {
		t.Errorf("hex shadow high = %+v", got)
	}
	if got := b.GetCell(14, 1); got.Style != theme.Shadow {
		t.Errorf("hex shadow low = %+v", got)
	}
}

func TestRenderEmptyBuffer(t *testing.T) {
	b, r, e := setup(t, nil)
	r.Render(Frame{View: e})
	if got := b.Row(1); got != strings.Repeat(" ", 28) {
		t.Errorf("Row(1) = %q, want blank", got)
	}
}

func TestRenderChrome(t *testing.T) {
	b, r, e := setup(t, []byte("ABCD"))
	r.Render(Frame{
		Tabs:    []Tab{{Title: "a.bin", Active: true}, {Title: "b.bin", Dirty: true}},
		View:    e,
		Status:  Status{Name: "a.bin", Size: 4, HasValue: true, U32: 0x44434241},
		Message: Message{Text: "saved"},
	})

	if got := b.Row(0); !strings.HasPrefix(got, " a.bin  b.bin* ") {
		t.Errorf("tab bar = %q", got)
	}
	if got := b.Row(6); !strings.HasPrefix(got, "HEX  00000000.H") {
		t.Errorf("status = %q", got)
	}
	if got := b.Row(7); !strings.HasPrefix(got, "saved") {
		t.Errorf("message = %q", got)
	}
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("terminal cursor shown without a prompt")
	}
}

func TestRenderPrompt(t *testing.T) {
	b, r, _ := setup(t, nil)
	r.Render(Frame{Prompt: Prompt{Label: "Find", Input: "41 42"}})
	if got := b.Row(7); !strings.HasPrefix(got, "Find: 41 42") {
		t.Errorf("prompt = %q", got)
	}
	x, y, visible := b.CursorPosition()
	if !visible || x != 11 || y != 7 {
		t.Errorf("cursor = %d,%d,%v, want 11,7,true", x, y, visible)
	}
}

func TestStatusLine(t *testing.T) {
	s := Status{
		Name:      "data.bin",
		Size:      2048,
		Dirty:     true,
		ReadOnly:  true,
		Mode:      cursor.ModeHex,
		Position:  3,
		U32:       1,
		I32:       1,
		HasValue:  true,
		UndoCount: 2,
	}

	if got := s.Left(); got != " data.bin [+] [RO]  2.0 kB" {
		t.Errorf("Left = %q", got)
	}
	if got := s.Right(); got != "HEX  00000001.L  u32 1  i32 1  undo 2/0 " {
		t.Errorf("Right = %q", got)
	}

	line := s.Line(80)
	if len(line) != 80 {
		t.Errorf("Line(80) width = %d", len(line))
	}
	if !strings.HasSuffix(line, s.Right()) {
		t.Errorf("Line(80) = %q, right part missing", line)
	}

	short := s.Line(45)
	if !strings.HasSuffix(short, s.Right()) || !strings.Contains(short, "…") {
		t.Errorf("Line(45) = %q, want truncated left", short)
	}
}

func TestStatusWithoutValue(t *testing.T) {
	s := Status{Mode: cursor.ModeASCII}
	if strings.Contains(s.Right(), "u32") {
		t.Errorf("Right = %q, want no value", s.Right())
	}
	if !strings.Contains(s.Left(), "[no file]") {
		t.Errorf("Left = %q", s.Left())
	}

	s.Alerts = 2
	if !strings.HasSuffix(s.Right(), "  !2 ") {
		t.Errorf("Right = %q, want alert count", s.Right())
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		in   byte
		want rune
	}{
		{'A', 'A'},
		{' ', ' '},
		{0x00, '.'},
		{0x1F, '.'},
		{0x7F, '.'},
		{0x85, '.'},
		{0xE9, 'é'},
	}
	for _, tt := range tests {
		if got := printable(tt.in); got != tt.want {
			t.Errorf("printable(%#x) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
