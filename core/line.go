package core

import "fmt"

// Line is an ordered sequence of character cells. Each cell holds one byte;
// the buffer does not interpret multi-byte encodings.
type Line struct {
	cells []byte
}

// NewLine builds a line holding the characters of s, inserted left to right.
func NewLine(s string) *Line {
	l := &Line{cells: make([]byte, 0, len(s))}
	for i := 0; i < len(s); i++ {
		l.cells = append(l.cells, s[i])
	}
	return l
}

// InsertAt inserts ch before offset pos. pos may equal Len.
func (l *Line) InsertAt(pos int, ch byte) error {
	if pos < 0 || pos > len(l.cells) {
		return fmt.Errorf("InsertAt: %w: position %d not in [0, %d]", ErrOutOfRange, pos, len(l.cells))
	}

	l.cells = append(l.cells, 0)
	copy(l.cells[pos+1:], l.cells[pos:])
	l.cells[pos] = ch
	return nil
}

// RemoveAt removes the character at offset pos.
func (l *Line) RemoveAt(pos int) error {
	if pos < 0 || pos >= len(l.cells) {
		return fmt.Errorf("RemoveAt: %w: position %d not in [0, %d)", ErrOutOfRange, pos, len(l.cells))
	}

	l.cells = append(l.cells[:pos], l.cells[pos+1:]...)
	return nil
}

// At returns the character at pos.
func (l *Line) At(pos int) (byte, error) {
	if pos < 0 || pos >= len(l.cells) {
		return 0, fmt.Errorf("At: %w: position %d not in [0, %d)", ErrOutOfRange, pos, len(l.cells))
	}
	return l.cells[pos], nil
}

// Content materializes the line as a string.
func (l *Line) Content() string {
	return string(l.cells)
}

// Len returns the number of characters in the line.
func (l *Line) Len() int {
	return len(l.cells)
}

// SetContent replaces every cell of the line with the characters of s.
func (l *Line) SetContent(s string) {
	l.cells = append(l.cells[:0], s...)
}

// appendLine moves the characters of other onto the end of l.
func (l *Line) appendLine(other *Line) {
	l.cells = append(l.cells, other.cells...)
}

// mapCells rewrites every cell in place.
func (l *Line) mapCells(fn func(byte) byte) {
	for i, c := range l.cells {
		l.cells[i] = fn(c)
	}
}
