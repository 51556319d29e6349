package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNullBackendCells(t *testing.T) {
	b := NewNullBackend(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	end := DrawString(b, 2, 1, "abc", DefaultStyle())
	if end != 5 {
		t.Errorf("DrawString end = %d, want 5", end)
	}
	if got := b.Row(1); got != "  abc     " {
		t.Errorf("Row(1) = %q", got)
	}

	b.SetCell(-1, 0, Cell{Rune: 'x'})
	b.SetCell(10, 0, Cell{Rune: 'x'})
	if got := b.GetCell(20, 20); got.Rune != ' ' {
		t.Errorf("out of range GetCell = %q, want blank", got.Rune)
	}

	b.Clear()
	if got := b.Row(1); got != "          " {
		t.Errorf("Row(1) after Clear = %q", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(4, 4)
	_ = b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	b.PostInterrupt("reload")
	b.Resize(8, 2)

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("second event = %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 8 || ev.Height != 2 {
		t.Errorf("third event = %+v", ev)
	}
	if w, h := b.Size(); w != 8 || h != 2 {
		t.Errorf("Size = %dx%d", w, h)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(4, 4)
	_ = b.Init()
	b.ShowCursor(1, 2)
	if x, y, v := b.CursorPosition(); x != 1 || y != 2 || !v {
		t.Errorf("cursor = %d,%d,%v", x, y, v)
	}
	b.HideCursor()
	if _, _, v := b.CursorPosition(); v {
		t.Error("cursor still visible")
	}
	b.Beep()
	if b.Beeps() != 1 {
		t.Errorf("Beeps = %d", b.Beeps())
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyRune, KeyRune},
		{tcell.KeyCtrlA, KeyCtrlA},
		{tcell.KeyCtrlS, KeyCtrlS},
		{tcell.KeyCtrlZ, KeyCtrlZ},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyPgDn, KeyPageDown},
		{tcell.KeyF12, KeyNone},
	}
	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	s := DefaultStyle().WithForeground(RGB(155, 90, 90)).With(AttrBold)
	back := convertTcellStyle(convertStyle(s))
	if back.Foreground != s.Foreground {
		t.Errorf("foreground = %+v, want %+v", back.Foreground, s.Foreground)
	}
	if !back.Background.Default {
		t.Errorf("background = %+v, want default", back.Background)
	}
	if !back.Attributes.Has(AttrBold) {
		t.Error("bold lost")
	}
}

func TestSimulationTerminal(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	term := newTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer term.Shutdown()

	screen.SetSize(20, 5)
	term.SetCell(3, 1, Cell{Rune: 'Z', Style: DefaultStyle()})
	if got := term.GetCell(3, 1); got.Rune != 'Z' {
		t.Errorf("GetCell = %q, want Z", got.Rune)
	}

	screen.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	ev := term.PollEvent()
	for ev.Type == EventResize {
		ev = term.PollEvent()
	}
	if ev.Type != EventKey || ev.Key != KeyCtrlS {
		t.Errorf("event = %+v, want Ctrl-S key", ev)
	}
}
