package core

import "strings"

// Statistics summarizes the whole document in one scan.
type Statistics struct {
	Words           int // whitespace-delimited tokens
	WordChars       int // characters across all tokens
	Smallest        int // shortest token length, valid only when Words > 0
	Largest         int // longest token length, valid only when Words > 0
	SpecialChars    int // neither alphanumeric nor whitespace
	Sentences       int // occurrences of '.', '!' and '?'
	Paragraphs      int // paragraphs with at least one non-empty line
	TotalLines      int
	TotalParagraphs int
}

// HasWords reports whether any token exists. Word length statistics are
// undefined otherwise.
func (s Statistics) HasWords() bool {
	return s.Words > 0
}

// AverageWordLength returns the mean token length, or false when the
// document has no words.
func (s Statistics) AverageWordLength() (float64, bool) {
	if s.Words == 0 {
		return 0, false
	}
	return float64(s.WordChars) / float64(s.Words), true
}

// fields splits s on C-locale whitespace.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r < 0x80 && isSpace(byte(r))
	})
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

// Stats scans every paragraph, line and character once.
func (d *Document) Stats() Statistics {
	var s Statistics
	s.TotalParagraphs = len(d.paragraphs)

	for _, p := range d.paragraphs {
		if !p.IsBlank() {
			s.Paragraphs++
		}
		for _, l := range p.lines {
			s.TotalLines++
			for _, c := range l.cells {
				if !isAlnum(c) && !isSpace(c) {
					s.SpecialChars++
				}
				if isSentenceEnd(c) {
					s.Sentences++
				}
			}

			for _, w := range fields(l.Content()) {
				n := len(w)
				if s.Words == 0 || n < s.Smallest {
					s.Smallest = n
				}
				if n > s.Largest {
					s.Largest = n
				}
				s.Words++
				s.WordChars += n
			}
		}
	}
	return s
}

func (d *Document) WordCount() int {
	return d.Stats().Words
}

// AverageWordLength returns false when the document has no words.
func (d *Document) AverageWordLength() (float64, bool) {
	return d.Stats().AverageWordLength()
}

// SmallestWordLength returns false when the document has no words.
func (d *Document) SmallestWordLength() (int, bool) {
	s := d.Stats()
	return s.Smallest, s.HasWords()
}

// LargestWordLength returns false when the document has no words.
func (d *Document) LargestWordLength() (int, bool) {
	s := d.Stats()
	return s.Largest, s.HasWords()
}

func (d *Document) SpecialCharCount() int {
	return d.Stats().SpecialChars
}

// SentenceCount counts terminal punctuation, not segmented sentences.
func (d *Document) SentenceCount() int {
	return d.Stats().Sentences
}

// ParagraphCount counts paragraphs that are not blank.
func (d *Document) ParagraphCount() int {
	return d.Stats().Paragraphs
}
