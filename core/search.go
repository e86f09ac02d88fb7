package core

import (
	"fmt"
	"strings"
)

// Character classes follow the C locale: the buffer is byte oriented.

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = toLower(c)
	}
	return string(b)
}

// containsLine reports whether any line contains pattern. Matches never span
// a line break.
func (d *Document) containsLine(pattern string, fold bool) bool {
	if pattern == "" {
		return false
	}
	if fold {
		pattern = lowerASCII(pattern)
	}

	found := false
	d.eachLine(func(l *Line) bool {
		content := l.Content()
		if fold {
			content = lowerASCII(content)
		}
		found = strings.Contains(content, pattern)
		return !found
	})
	return found
}

// FindWord reports whether some line contains word. When caseSensitive is
// false both sides are lowercased first.
func (d *Document) FindWord(word string, caseSensitive bool) bool {
	return d.containsLine(word, !caseSensitive)
}

// FindSentence reports whether some line contains text verbatim.
func (d *Document) FindSentence(text string) bool {
	return d.containsLine(text, false)
}

// FindSubstring reports whether some line contains text verbatim.
func (d *Document) FindSubstring(text string) bool {
	return d.containsLine(text, false)
}

// SubstringCount counts non-overlapping occurrences of text, line by line.
func (d *Document) SubstringCount(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	d.eachLine(func(l *Line) bool {
		n += strings.Count(l.Content(), text)
		return true
	})
	return n
}

// ReplaceFirst replaces the first occurrence of oldWord in the first line
// that contains it. It reports whether a replacement happened.
func (d *Document) ReplaceFirst(oldWord, newWord string) bool {
	if oldWord == "" {
		return false
	}

	replaced := false
	d.eachLine(func(l *Line) bool {
		content := l.Content()
		if !strings.Contains(content, oldWord) {
			return true
		}
		l.SetContent(strings.Replace(content, oldWord, newWord, 1))
		replaced = true
		return false
	})
	return replaced
}

// ReplaceAll replaces every non-overlapping occurrence of oldWord in every
// line. The scan resumes after each replacement, so text introduced by
// newWord is never matched again. It returns the number of replacements.
func (d *Document) ReplaceAll(oldWord, newWord string) int {
	if oldWord == "" {
		return 0
	}

	n := 0
	d.eachLine(func(l *Line) bool {
		content := l.Content()
		if c := strings.Count(content, oldWord); c > 0 {
			l.SetContent(strings.ReplaceAll(content, oldWord, newWord))
			n += c
		}
		return true
	})
	return n
}

// rewriteFirstInEachLine replaces the first occurrence of word in every line
// containing it and returns the number of lines changed.
func (d *Document) rewriteFirstInEachLine(word, replacement string) int {
	if word == "" {
		return 0
	}

	n := 0
	d.eachLine(func(l *Line) bool {
		content := l.Content()
		if strings.Contains(content, word) {
			l.SetContent(strings.Replace(content, word, replacement, 1))
			n++
		}
		return true
	})
	return n
}

// AddPrefix turns the first occurrence of word in every matching line into
// prefix+word.
func (d *Document) AddPrefix(word, prefix string) int {
	return d.rewriteFirstInEachLine(word, prefix+word)
}

// AddPostfix turns the first occurrence of word in every matching line into
// word+postfix.
func (d *Document) AddPostfix(word, postfix string) int {
	return d.rewriteFirstInEachLine(word, word+postfix)
}

// ConvertCase rewrites every character of the document to upper or lower
// case. Non-alphabetic characters are unchanged.
func (d *Document) ConvertCase(upper bool) {
	conv := toLower
	if upper {
		conv = toUpper
	}
	d.eachLine(func(l *Line) bool {
		l.mapCells(conv)
		return true
	})
}

// Span is a half-open range of columns [Start, End) within one line.
type Span struct {
	Start int
	End   int
}

func (s Span) Empty() bool { return s.End <= s.Start }

// WordUnderCursor returns the alphanumeric run covering or touching column
// on the line at the flattened index row. The result is empty when column is
// not inside or adjacent to such a run.
func (d *Document) WordUnderCursor(row, column int) (string, Span, error) {
	line, err := d.LineAt(row)
	if err != nil {
		return "", Span{}, err
	}
	if column < 0 || column > line.Len() {
		return "", Span{}, fmt.Errorf("WordUnderCursor: %w: column %d not in [0, %d]", ErrOutOfRange, column, line.Len())
	}

	content := line.Content()
	start, end := column, column
	for start > 0 && isAlnum(content[start-1]) {
		start--
	}
	for end < len(content) && isAlnum(content[end]) {
		end++
	}
	return content[start:end], Span{Start: start, End: end}, nil
}

// ConvertWordCase converts the word under the cursor to upper or lower case
// and returns the converted word.
func (d *Document) ConvertWordCase(row, column int, upper bool) (string, error) {
	_, span, err := d.WordUnderCursor(row, column)
	if err != nil {
		return "", err
	}
	line, _ := d.LineAt(row)

	conv := toLower
	if upper {
		conv = toUpper
	}
	for i := span.Start; i < span.End; i++ {
		line.cells[i] = conv(line.cells[i])
	}
	return string(line.cells[span.Start:span.End]), nil
}
