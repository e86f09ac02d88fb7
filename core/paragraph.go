package core

import "fmt"

// Paragraph is an ordered sequence of lines.
type Paragraph struct {
	lines []*Line
}

// NewParagraph returns a paragraph holding a single empty line.
func NewParagraph() *Paragraph {
	return &Paragraph{lines: []*Line{NewLine("")}}
}

// newParagraphFromLines builds a paragraph with one line per string.
func newParagraphFromLines(content []string) *Paragraph {
	p := &Paragraph{lines: make([]*Line, 0, len(content))}
	for _, s := range content {
		p.lines = append(p.lines, NewLine(s))
	}
	return p
}

func (p *Paragraph) LineCount() int {
	return len(p.lines)
}

// LineAt returns the line at index within the paragraph.
func (p *Paragraph) LineAt(index int) (*Line, error) {
	if index < 0 || index >= len(p.lines) {
		return nil, fmt.Errorf("LineAt: %w: line %d not in [0, %d)", ErrOutOfRange, index, len(p.lines))
	}
	return p.lines[index], nil
}

func (p *Paragraph) AppendLine(line *Line) {
	p.lines = append(p.lines, line)
}

// InsertLineAt inserts line before index. index may equal LineCount.
func (p *Paragraph) InsertLineAt(index int, line *Line) error {
	if index < 0 || index > len(p.lines) {
		return fmt.Errorf("InsertLineAt: %w: line %d not in [0, %d]", ErrOutOfRange, index, len(p.lines))
	}

	p.lines = append(p.lines, nil)
	copy(p.lines[index+1:], p.lines[index:])
	p.lines[index] = line
	return nil
}

// RemoveLineAt removes the line at index. A paragraph left without lines is
// re-seeded with one empty line.
func (p *Paragraph) RemoveLineAt(index int) error {
	if index < 0 || index >= len(p.lines) {
		return fmt.Errorf("RemoveLineAt: %w: line %d not in [0, %d)", ErrOutOfRange, index, len(p.lines))
	}

	p.lines = append(p.lines[:index], p.lines[index+1:]...)
	if len(p.lines) == 0 {
		p.lines = []*Line{NewLine("")}
	}
	return nil
}

// Contents returns the materialized content of every line.
func (p *Paragraph) Contents() []string {
	out := make([]string, len(p.lines))
	for i, l := range p.lines {
		out[i] = l.Content()
	}
	return out
}

// IsBlank reports whether every line of the paragraph is empty.
func (p *Paragraph) IsBlank() bool {
	for _, l := range p.lines {
		if l.Len() > 0 {
			return false
		}
	}
	return true
}
