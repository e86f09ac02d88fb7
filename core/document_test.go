package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentIsSeeded(t *testing.T) {
	d := NewDocument()

	assert.Equal(t, 1, d.NumParagraphs())
	assert.Equal(t, 1, d.LineCount())
	assert.Equal(t, []string{""}, d.Lines())
}

func TestParagraphRemoveLastLineReseeds(t *testing.T) {
	p := newParagraphFromLines([]string{"only"})

	require.NoError(t, p.RemoveLineAt(0))

	assert.Equal(t, 1, p.LineCount())
	assert.True(t, p.IsBlank())
	assert.ErrorIs(t, p.RemoveLineAt(1), ErrOutOfRange)
}

func TestParagraphInsertLineAt(t *testing.T) {
	p := newParagraphFromLines([]string{"a", "c"})

	require.NoError(t, p.InsertLineAt(1, NewLine("b")))
	require.NoError(t, p.InsertLineAt(3, NewLine("d")))
	assert.ErrorIs(t, p.InsertLineAt(5, NewLine("x")), ErrOutOfRange)

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, p.Contents()); diff != "" {
		t.Errorf("Contents() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentRemoveLastParagraphReseeds(t *testing.T) {
	d := NewDocumentFromLines([]string{"x", "y"})

	require.NoError(t, d.RemoveParagraphAt(0))

	assert.Equal(t, 1, d.NumParagraphs())
	assert.Equal(t, []string{""}, d.Lines())
}

func TestDocumentLinesSeparatesParagraphs(t *testing.T) {
	d := NewDocumentFromLines([]string{"first", "second"})
	d.AppendParagraph(newParagraphFromLines([]string{"third"}))

	want := []string{"first", "second", "", "third"}
	if diff := cmp.Diff(want, d.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "first\nsecond\n\nthird", d.String())
	assert.Equal(t, 3, d.LineCount())
}

func TestDocumentLocateAndFlatIndex(t *testing.T) {
	d := NewDocumentFromLines([]string{"a", "b"})
	require.NoError(t, d.InsertParagraphAt(1, newParagraphFromLines([]string{"c", "d", "e"})))

	tests := []struct {
		flat, para, row int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0},
		{4, 1, 2},
	}

	for _, tt := range tests {
		para, row, err := d.Locate(tt.flat)
		require.NoError(t, err)
		assert.Equal(t, tt.para, para, "paragraph of line %d", tt.flat)
		assert.Equal(t, tt.row, row, "row of line %d", tt.flat)

		flat, err := d.FlatIndex(tt.para, tt.row)
		require.NoError(t, err)
		assert.Equal(t, tt.flat, flat)
	}

	_, _, err := d.Locate(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = d.Locate(10)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "line 10 not in [0, 5)")
	_, _, err = d.Locate(-1)
	assert.Contains(t, err.Error(), "line -1 not in [0, 5)")
	_, err = d.FlatIndex(1, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = d.FlatIndex(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	line, err := d.LineAt(3)
	require.NoError(t, err)
	assert.Equal(t, "d", line.Content())
}

func TestDocumentLoadFromEmptyInput(t *testing.T) {
	d := NewDocumentFromLines([]string{"old"})
	d.LoadFrom(nil)

	assert.Equal(t, []string{""}, d.Lines())
}

func TestDocumentLoadFailureLeavesDocumentUntouched(t *testing.T) {
	s := NewMemoryStorage()
	d := NewDocumentFromLines([]string{"keep me"})

	err := d.Load(s, "missing.txt")
	require.ErrorIs(t, err, ErrIO)
	assert.Equal(t, []string{"keep me"}, d.Lines())
}

func TestDocumentSaveAndLoad(t *testing.T) {
	s := NewMemoryStorage()
	d := NewDocumentFromLines([]string{"one", "two"})
	d.AppendParagraph(newParagraphFromLines([]string{"three"}))

	require.NoError(t, d.SaveTo(s, "doc.txt"))
	assert.Equal(t, []string{"one", "two", "", "three"}, s.Files["doc.txt"])

	loaded := NewDocument()
	require.NoError(t, loaded.Load(s, "doc.txt"))
	assert.Equal(t, d.Lines(), loaded.Lines())
	assert.Equal(t, 1, loaded.NumParagraphs())
}
