package core

// Cursor is the edit position inside the active paragraph. Row indexes the
// paragraph's lines; Col may equal the line length ("after the last
// character").
type Cursor struct {
	Position Position
}

// --- Cursor Movement ---

func lineLen(p *Paragraph, row int) int {
	if row < 0 || row >= p.LineCount() {
		return 0
	}
	return p.lines[row].Len()
}

// clampCol ensures the column stays within the valid range for the current line
func (c *Cursor) clampCol(p *Paragraph) {
	n := lineLen(p, c.Position.Row)
	if c.Position.Col > n {
		c.Position.Col = n
	}
	if c.Position.Col < 0 {
		c.Position.Col = 0
	}
}

// clamp pulls both row and column back inside the paragraph.
func (c *Cursor) clamp(p *Paragraph) {
	if c.Position.Row >= p.LineCount() {
		c.Position.Row = p.LineCount() - 1
	}
	if c.Position.Row < 0 {
		c.Position.Row = 0
	}
	c.clampCol(p)
}

// MoveLeft moves one character left without leaving the line.
func (c *Cursor) MoveLeft(p *Paragraph) error {
	if c.Position.Col <= 0 {
		return ErrStartOfLine
	}
	c.Position.Col--
	return nil
}

// MoveRight moves one character right, up to the position after the last
// character.
func (c *Cursor) MoveRight(p *Paragraph) error {
	if c.Position.Col >= lineLen(p, c.Position.Row) {
		return ErrEndOfLine
	}
	c.Position.Col++
	return nil
}

// MoveUp moves one line up, clamping the column to the new line.
func (c *Cursor) MoveUp(p *Paragraph) error {
	if c.Position.Row <= 0 {
		return ErrStartOfBuffer
	}
	c.Position.Row--
	c.clampCol(p)
	return nil
}

// MoveDown moves one line down, clamping the column to the new line.
func (c *Cursor) MoveDown(p *Paragraph) error {
	if c.Position.Row >= p.LineCount()-1 {
		return ErrEndOfBuffer
	}
	c.Position.Row++
	c.clampCol(p)
	return nil
}

// MoveLeftOrUp moves left, wrapping to the end of the previous line at
// column 0.
func (c *Cursor) MoveLeftOrUp(p *Paragraph) error {
	if c.Position.Col > 0 {
		return c.MoveLeft(p)
	}
	if err := c.MoveUp(p); err != nil {
		return err
	}
	c.MoveToAfterLineEnd(p)
	return nil
}

// MoveRightOrDown moves right, wrapping to the start of the next line at
// the end of the line.
func (c *Cursor) MoveRightOrDown(p *Paragraph) error {
	if c.Position.Col < lineLen(p, c.Position.Row) {
		return c.MoveRight(p)
	}
	if err := c.MoveDown(p); err != nil {
		return err
	}
	c.MoveToLineStart()
	return nil
}

// MoveToLineStart moves the cursor to column 0
func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
}

// MoveToAfterLineEnd moves the cursor *after* the last character of the current line
func (c *Cursor) MoveToAfterLineEnd(p *Paragraph) {
	c.Position.Col = lineLen(p, c.Position.Row)
}

// MoveToParagraphStart moves the cursor to the first line, column 0.
func (c *Cursor) MoveToParagraphStart() {
	c.Position = Position{}
}

// MoveToParagraphEnd moves the cursor after the last character of the last line.
func (c *Cursor) MoveToParagraphEnd(p *Paragraph) {
	c.Position.Row = max(p.LineCount()-1, 0)
	c.MoveToAfterLineEnd(p)
}
