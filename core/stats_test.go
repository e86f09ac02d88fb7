package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsTwoLineScenario(t *testing.T) {
	d := NewDocumentFromLines([]string{"hello world", "foo bar"})

	assert.Equal(t, 4, d.WordCount())

	largest, ok := d.LargestWordLength()
	require.True(t, ok)
	assert.Equal(t, 5, largest)

	smallest, ok := d.SmallestWordLength()
	require.True(t, ok)
	assert.Equal(t, 3, smallest)

	avg, ok := d.AverageWordLength()
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestSpecialCharactersAndSentences(t *testing.T) {
	d := NewDocumentFromLines([]string{"a, b! c?"})

	assert.Equal(t, 3, d.SpecialCharCount())
	assert.Equal(t, 2, d.SentenceCount())
	assert.Equal(t, 3, d.WordCount())
}

func TestStatsWithoutWords(t *testing.T) {
	d := NewDocumentFromLines([]string{"", " \t "})

	assert.Equal(t, 0, d.WordCount())

	_, ok := d.AverageWordLength()
	assert.False(t, ok)
	_, ok = d.SmallestWordLength()
	assert.False(t, ok)
	_, ok = d.LargestWordLength()
	assert.False(t, ok)

	assert.Equal(t, 0, d.SpecialCharCount())
	assert.Equal(t, 1, d.ParagraphCount(), "whitespace makes a paragraph non-blank")
}

func TestParagraphCountSkipsBlankParagraphs(t *testing.T) {
	d := NewDocumentFromLines([]string{"first"})
	d.AppendParagraph(NewParagraph())
	d.AppendParagraph(newParagraphFromLines([]string{"", "second"}))

	s := d.Stats()

	assert.Equal(t, 2, s.Paragraphs)
	assert.Equal(t, 3, s.TotalParagraphs)
	assert.Equal(t, 4, s.TotalLines)
}

func TestSmallestWordTieKeepsLength(t *testing.T) {
	d := NewDocumentFromLines([]string{"abc xyz abcd"})

	s := d.Stats()

	assert.Equal(t, 3, s.Smallest)
	assert.Equal(t, 4, s.Largest)
	assert.Equal(t, 10, s.WordChars)
}
