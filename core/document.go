package core

import (
	"fmt"
	"strings"
)

// Document is the whole editable buffer: an ordered sequence of paragraphs.
// It always holds at least one paragraph.
type Document struct {
	paragraphs []*Paragraph
}

// NewDocument returns a document seeded with one paragraph holding one empty line.
func NewDocument() *Document {
	return &Document{paragraphs: []*Paragraph{NewParagraph()}}
}

// NewDocumentFromLines builds a document with a single paragraph holding one
// line per input string.
func NewDocumentFromLines(lines []string) *Document {
	d := NewDocument()
	d.LoadFrom(lines)
	return d
}

func (d *Document) NumParagraphs() int {
	return len(d.paragraphs)
}

// ParagraphAt returns the paragraph at index.
func (d *Document) ParagraphAt(index int) (*Paragraph, error) {
	if index < 0 || index >= len(d.paragraphs) {
		return nil, fmt.Errorf("ParagraphAt: %w: paragraph %d not in [0, %d)", ErrOutOfRange, index, len(d.paragraphs))
	}
	return d.paragraphs[index], nil
}

func (d *Document) AppendParagraph(p *Paragraph) {
	d.paragraphs = append(d.paragraphs, p)
}

// InsertParagraphAt inserts p before index. index may equal NumParagraphs.
func (d *Document) InsertParagraphAt(index int, p *Paragraph) error {
	if index < 0 || index > len(d.paragraphs) {
		return fmt.Errorf("InsertParagraphAt: %w: paragraph %d not in [0, %d]", ErrOutOfRange, index, len(d.paragraphs))
	}

	d.paragraphs = append(d.paragraphs, nil)
	copy(d.paragraphs[index+1:], d.paragraphs[index:])
	d.paragraphs[index] = p
	return nil
}

// RemoveParagraphAt removes the paragraph at index. Removing the last
// remaining paragraph re-seeds the document.
func (d *Document) RemoveParagraphAt(index int) error {
	if index < 0 || index >= len(d.paragraphs) {
		return fmt.Errorf("RemoveParagraphAt: %w: paragraph %d not in [0, %d)", ErrOutOfRange, index, len(d.paragraphs))
	}

	d.paragraphs = append(d.paragraphs[:index], d.paragraphs[index+1:]...)
	if len(d.paragraphs) == 0 {
		d.paragraphs = []*Paragraph{NewParagraph()}
	}
	return nil
}

// LineCount returns the number of lines across all paragraphs.
func (d *Document) LineCount() int {
	n := 0
	for _, p := range d.paragraphs {
		n += p.LineCount()
	}
	return n
}

// Locate maps a flattened line index to its paragraph and the line index
// inside that paragraph.
func (d *Document) Locate(index int) (para, row int, err error) {
	if index >= 0 {
		rest := index
		for i, p := range d.paragraphs {
			if rest < p.LineCount() {
				return i, rest, nil
			}
			rest -= p.LineCount()
		}
	}
	return 0, 0, fmt.Errorf("Locate: %w: line %d not in [0, %d)", ErrOutOfRange, index, d.LineCount())
}

// FlatIndex maps a (paragraph, line) pair to the flattened line index.
func (d *Document) FlatIndex(para, row int) (int, error) {
	p, err := d.ParagraphAt(para)
	if err != nil {
		return 0, err
	}
	if row < 0 || row >= p.LineCount() {
		return 0, fmt.Errorf("FlatIndex: %w: line %d not in [0, %d)", ErrOutOfRange, row, p.LineCount())
	}

	index := row
	for _, prev := range d.paragraphs[:para] {
		index += prev.LineCount()
	}
	return index, nil
}

// LineAt returns the line at a flattened index.
func (d *Document) LineAt(index int) (*Line, error) {
	para, row, err := d.Locate(index)
	if err != nil {
		return nil, err
	}
	return d.paragraphs[para].lines[row], nil
}

// LoadFrom replaces the whole document with one paragraph holding one line
// per input string, in order. An empty input yields one empty line.
func (d *Document) LoadFrom(lines []string) {
	p := newParagraphFromLines(lines)
	if p.LineCount() == 0 {
		p = NewParagraph()
	}
	d.paragraphs = []*Paragraph{p}
}

// Load reads the named resource and replaces the document with it. On a read
// failure the document is left untouched.
func (d *Document) Load(r LineReader, name string) error {
	lines, err := r.ReadLines(name)
	if err != nil {
		return fmt.Errorf("Load %s: %w", name, err)
	}
	d.LoadFrom(lines)
	return nil
}

// Lines serializes the document: each paragraph's lines in order, with one
// blank line between paragraphs.
func (d *Document) Lines() []string {
	out := make([]string, 0, d.LineCount()+len(d.paragraphs))
	for i, p := range d.paragraphs {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, p.Contents()...)
	}
	return out
}

// String returns the serialized document joined by line breaks.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// SaveTo writes the serialized document to the named resource. The document
// is never modified.
func (d *Document) SaveTo(w LineWriter, name string) error {
	if err := w.WriteLines(name, d.Lines()); err != nil {
		return fmt.Errorf("Save %s: %w", name, err)
	}
	return nil
}

// eachLine visits every line in document order. Returning false stops the walk.
func (d *Document) eachLine(fn func(*Line) bool) {
	for _, p := range d.paragraphs {
		for _, l := range p.lines {
			if !fn(l) {
				return
			}
		}
	}
}
