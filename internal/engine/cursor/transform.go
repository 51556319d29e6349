package cursor

// MoveLeft moves one nibble towards the start.
func (c Cursor) MoveLeft() Cursor {
	return c.MoveBy(-1)
}

// MoveRight moves one nibble towards the end.
func (c Cursor) MoveRight() Cursor {
	return c.MoveBy(1)
}

// MoveUp moves one row up, saturating at position 0.
func (c Cursor) MoveUp(bytesPerRow int) Cursor {
	return c.MoveBy(-rowSpan(bytesPerRow))
}

// MoveDown moves one row down, saturating at the last valid position.
func (c Cursor) MoveDown(bytesPerRow int) Cursor {
	return c.MoveBy(rowSpan(bytesPerRow))
}

// MoveLineStart moves to the high nibble of the first byte in the row.
func (c Cursor) MoveLineStart(bytesPerRow int) Cursor {
	span := rowSpan(bytesPerRow)
	return c.MoveTo(c.position - c.position%Position(span))
}

// MoveLineEnd moves to the high nibble of the last byte in the row.
func (c Cursor) MoveLineEnd(bytesPerRow int) Cursor {
	span := rowSpan(bytesPerRow)
	start := c.position - c.position%Position(span)
	return c.MoveTo(start + Position(span) - 2)
}

// MoveBufferStart moves to position 0.
func (c Cursor) MoveBufferStart() Cursor {
	return c.MoveTo(0)
}

// MoveBufferEnd moves to the high nibble of the last byte.
func (c Cursor) MoveBufferEnd() Cursor {
	if c.length == 0 {
		return c.MoveTo(0)
	}
	return c.MoveTo(Position(2 * (c.length - 1)))
}

// MovePageUp moves visibleRows rows up.
func (c Cursor) MovePageUp(bytesPerRow, visibleRows int) Cursor {
	return c.MoveBy(-rowSpan(bytesPerRow) * pageRows(visibleRows))
}

// MovePageDown moves visibleRows rows down.
func (c Cursor) MovePageDown(bytesPerRow, visibleRows int) Cursor {
	return c.MoveBy(rowSpan(bytesPerRow) * pageRows(visibleRows))
}

func pageRows(rows int) int {
	if rows < 1 {
		return 1
	}
	return rows
}
