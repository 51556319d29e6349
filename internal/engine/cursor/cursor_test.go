package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(3)

	if c.Position() != 0 {
		t.Errorf("expected position 0, got %d", c.Position())
	}
	if c.Mode() != ModeHex {
		t.Errorf("expected hex mode, got %s", c.Mode())
	}
	if c.MaxPosition() != 5 {
		t.Errorf("expected max position 5, got %d", c.MaxPosition())
	}
}

func TestAddressing(t *testing.T) {
	tests := []struct {
		pos    Position
		offset int
		nibble Nibble
	}{
		{0, 0, NibbleHigh},
		{1, 0, NibbleLow},
		{2, 1, NibbleHigh},
		{19, 9, NibbleLow},
	}

	for _, tt := range tests {
		if got := tt.pos.ByteOffset(); got != tt.offset {
			t.Errorf("Position(%d).ByteOffset() = %d, want %d", tt.pos, got, tt.offset)
		}
		if got := tt.pos.Nibble(); got != tt.nibble {
			t.Errorf("Position(%d).Nibble() = %d, want %d", tt.pos, got, tt.nibble)
		}
	}
}

func TestMoveToClamps(t *testing.T) {
	tests := []struct {
		name   string
		length int
		raw    Position
		want   Position
	}{
		{"negative", 10, -5, 0},
		{"inside", 10, 7, 7},
		{"last low nibble", 10, 19, 19},
		{"past end", 10, 20, 19},
		{"empty buffer", 0, 4, 0},
		{"empty buffer negative", 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.length).MoveTo(tt.raw)
			if c.Position() != tt.want {
				t.Errorf("MoveTo(%d) = %d, want %d", tt.raw, c.Position(), tt.want)
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	const bpr = 4

	tests := []struct {
		name  string
		start Position
		move  func(Cursor) Cursor
		want  Position
	}{
		{"left", 5, Cursor.MoveLeft, 4},
		{"left at start", 0, Cursor.MoveLeft, 0},
		{"right", 5, Cursor.MoveRight, 6},
		{"right at end", 19, Cursor.MoveRight, 19},
		{"up", 10, func(c Cursor) Cursor { return c.MoveUp(bpr) }, 2},
		{"up saturates", 3, func(c Cursor) Cursor { return c.MoveUp(bpr) }, 0},
		{"down", 10, func(c Cursor) Cursor { return c.MoveDown(bpr) }, 18},
		{"down clamps", 14, func(c Cursor) Cursor { return c.MoveDown(bpr) }, 19},
		{"line start", 13, func(c Cursor) Cursor { return c.MoveLineStart(bpr) }, 8},
		{"line end", 9, func(c Cursor) Cursor { return c.MoveLineEnd(bpr) }, 14},
		{"line end short row", 17, func(c Cursor) Cursor { return c.MoveLineEnd(bpr) }, 19},
		{"buffer start", 13, Cursor.MoveBufferStart, 0},
		{"buffer end", 3, Cursor.MoveBufferEnd, 18},
		{"page up", 18, func(c Cursor) Cursor { return c.MovePageUp(bpr, 2) }, 2},
		{"page up saturates", 10, func(c Cursor) Cursor { return c.MovePageUp(bpr, 2) }, 0},
		{"page down", 1, func(c Cursor) Cursor { return c.MovePageDown(bpr, 2) }, 17},
		{"page down clamps", 4, func(c Cursor) Cursor { return c.MovePageDown(bpr, 2) }, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(10).MoveTo(tt.start)
			got := tt.move(c)
			if got.Position() != tt.want {
				t.Errorf("from %d got %d, want %d", tt.start, got.Position(), tt.want)
			}
			if c.Position() != tt.start {
				t.Errorf("receiver modified: %d", c.Position())
			}
		})
	}
}

func TestMoveDownLastByte(t *testing.T) {
	// Ten bytes, four per row: byte 5 moves down to byte 9.
	c := New(10).MoveTo(10).MoveDown(4)

	if c.Position() != 18 {
		t.Errorf("expected position 18, got %d", c.Position())
	}
	if c.ByteOffset() != 9 {
		t.Errorf("expected byte offset 9, got %d", c.ByteOffset())
	}
}

func TestDegenerateRowArguments(t *testing.T) {
	c := New(10).MoveTo(6)

	if got := c.MoveDown(0).Position(); got != 8 {
		t.Errorf("bytesPerRow 0 should act as 1, got %d", got)
	}
	if got := c.MovePageDown(1, 0).Position(); got != 8 {
		t.Errorf("visibleRows 0 should act as 1, got %d", got)
	}
	if got := c.Row(0); got != 3 {
		t.Errorf("Row(0) = %d, want 3", got)
	}
}

func TestEmptyBufferNavigation(t *testing.T) {
	c := New(0)

	moves := []Cursor{
		c.MoveRight(),
		c.MoveDown(4),
		c.MoveLineEnd(4),
		c.MoveBufferEnd(),
		c.MovePageDown(4, 10),
	}
	for i, m := range moves {
		if m.Position() != 0 {
			t.Errorf("move %d: expected position 0 on empty buffer, got %d", i, m.Position())
		}
	}
}

func TestToggleMode(t *testing.T) {
	c := New(4).MoveTo(3)

	a := c.ToggleMode()
	if a.Mode() != ModeASCII {
		t.Errorf("expected ASCII mode, got %s", a.Mode())
	}
	if a.Position() != 3 {
		t.Errorf("toggle must not move the cursor, got %d", a.Position())
	}
	if a.ToggleMode().Mode() != ModeHex {
		t.Error("second toggle should return to hex mode")
	}
}

func TestRow(t *testing.T) {
	c := New(100).MoveTo(33)

	if got := c.Row(8); got != 2 {
		t.Errorf("Row(8) = %d, want 2", got)
	}
}

func TestWithLength(t *testing.T) {
	c := New(10).MoveTo(19).WithLength(4)

	if c.Position() != 7 {
		t.Errorf("expected position re-clamped to 7, got %d", c.Position())
	}
}
