package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWord(t *testing.T) {
	d := NewDocumentFromLines([]string{"The quick brown fox", "jumps over"})

	tests := []struct {
		name          string
		word          string
		caseSensitive bool
		want          bool
	}{
		{"exact", "quick", true, true},
		{"ignore case", "QUICK", false, true},
		{"case mismatch", "QUICK", true, false},
		{"substring of word", "ump", true, true},
		{"across lines", "fox jumps", false, false},
		{"absent", "cat", false, false},
		{"empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.FindWord(tt.word, tt.caseSensitive))
		})
	}
}

func TestFindSentenceAndSubstring(t *testing.T) {
	d := NewDocumentFromLines([]string{"Go is fun. Go is fast."})

	assert.True(t, d.FindSentence("Go is fast."))
	assert.False(t, d.FindSentence("go is fast."))
	assert.True(t, d.FindSubstring("fun. Go"))
	assert.False(t, d.FindSubstring("slow"))
}

func TestSubstringCount(t *testing.T) {
	d := NewDocumentFromLines([]string{"aaaa", "banana", ""})

	assert.Equal(t, 2, d.SubstringCount("aa"))
	assert.Equal(t, 2, d.SubstringCount("an"))
	assert.Equal(t, 0, d.SubstringCount(""))
}

func TestReplaceFirst(t *testing.T) {
	d := NewDocumentFromLines([]string{"x", "foo foo", "foo"})

	assert.True(t, d.ReplaceFirst("foo", "bar"))
	if diff := cmp.Diff([]string{"x", "bar foo", "foo"}, d.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, d.ReplaceFirst("missing", "bar"))
}

func TestReplaceAllLeavesNoOccurrences(t *testing.T) {
	d := NewDocumentFromLines([]string{"the cat the", "theme", "other"})

	n := d.ReplaceAll("the", "a")

	assert.Equal(t, 4, n)
	assert.Equal(t, 0, d.SubstringCount("the"))
	if diff := cmp.Diff([]string{"a cat a", "ame", "oar"}, d.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceAllDoesNotRescanReplacement(t *testing.T) {
	d := NewDocumentFromLines([]string{"ab", "a"})

	n := d.ReplaceAll("a", "aa")

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"aab", "aa"}, d.Lines())
}

func TestAddPrefixAndPostfix(t *testing.T) {
	d := NewDocumentFromLines([]string{"cat dog cat", "bird", "catalog"})

	assert.Equal(t, 2, d.AddPrefix("cat", "wild"))
	assert.Equal(t, []string{"wildcat dog cat", "bird", "wildcatalog"}, d.Lines())

	assert.Equal(t, 1, d.AddPostfix("bird", "s"))
	assert.Equal(t, "birds", d.paragraphs[0].lines[1].Content())

	assert.Equal(t, 0, d.AddPrefix("", "x"))
}

func TestConvertCaseIsIdempotent(t *testing.T) {
	d := NewDocumentFromLines([]string{"Hello, World 1", "MiXeD"})

	d.ConvertCase(true)
	upper := d.Lines()
	assert.Equal(t, []string{"HELLO, WORLD 1", "MIXED"}, upper)

	d.ConvertCase(true)
	assert.Equal(t, upper, d.Lines())

	d.ConvertCase(false)
	lower := d.Lines()
	assert.Equal(t, []string{"hello, world 1", "mixed"}, lower)

	d.ConvertCase(false)
	assert.Equal(t, lower, d.Lines())
}

func TestWordUnderCursor(t *testing.T) {
	d := NewDocumentFromLines([]string{"hello world", "a  b"})

	tests := []struct {
		name     string
		row, col int
		want     string
		span     Span
	}{
		{"start of word", 0, 0, "hello", Span{0, 5}},
		{"inside word", 0, 2, "hello", Span{0, 5}},
		{"just after word", 0, 5, "hello", Span{0, 5}},
		{"second word", 0, 6, "world", Span{6, 11}},
		{"end of line", 0, 11, "world", Span{6, 11}},
		{"between spaces", 1, 2, "", Span{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, span, err := d.WordUnderCursor(tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, word)
			assert.Equal(t, tt.span, span)
			assert.Equal(t, tt.want == "", span.Empty())
		})
	}

	_, _, err := d.WordUnderCursor(0, 12)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = d.WordUnderCursor(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestConvertWordCase(t *testing.T) {
	d := NewDocumentFromLines([]string{"hello world-wide web"})

	word, err := d.ConvertWordCase(0, 8, true)
	require.NoError(t, err)
	assert.Equal(t, "WORLD", word)
	assert.Equal(t, "hello WORLD-wide web", d.String())

	word, err = d.ConvertWordCase(0, 6, false)
	require.NoError(t, err)
	assert.Equal(t, "world", word)
	assert.True(t, strings.HasPrefix(d.String(), "hello world-"))
}
