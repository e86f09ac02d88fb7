package core

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLengthEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "a1"},
		{"aaabcc", "a3b1c2"},
		{"abc", "a1b1c1"},
		{strings.Repeat("z", 12), "z12"},
		{"  x", " 2x1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RunLengthEncode(tt.in), "RunLengthEncode(%q)", tt.in)
	}
}

func TestRunLengthRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"aaabccdddd",
		"hello, world!",
		" \t \t",
		strings.Repeat("q", 150) + "r",
	}

	for _, in := range inputs {
		got, err := RunLengthDecode(RunLengthEncode(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestRunLengthDecodeErrors(t *testing.T) {
	got, err := RunLengthDecode("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = RunLengthDecode("a")
	assert.Error(t, err)

	_, err = RunLengthDecode("a2bc1")
	assert.Error(t, err)

	_, err = RunLengthDecode("a300000000")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = RunLengthDecode("a99999999999999999999")
	assert.Error(t, err)

	half := strconv.Itoa(maxLineLength/2 + 1)
	_, err = RunLengthDecode("a" + half + "b" + half)
	assert.ErrorIs(t, err, ErrOutOfRange, "runs add up past the limit")
}

func TestDecodeResourceRejectsOversizedRun(t *testing.T) {
	s := NewMemoryStorage()
	s.Files["bomb"] = []string{"a300000000"}

	err := DecodeResource(s, "bomb")

	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, []string{"a300000000"}, s.Files["bomb"])
}

func TestEncodeDecodeLines(t *testing.T) {
	lines := []string{"aaab", "", "cc"}

	encoded := EncodeLines(lines)
	if diff := cmp.Diff([]string{"a3b1", "", "c2"}, encoded); diff != "" {
		t.Errorf("EncodeLines() mismatch (-want +got):\n%s", diff)
	}

	decoded, err := DecodeLines(encoded)
	require.NoError(t, err)
	assert.Equal(t, lines, decoded)

	_, err = DecodeLines([]string{"a1", "oops"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWordsFormableFrom(t *testing.T) {
	d := NewDocumentFromLines([]string{"abcd z abc", "ab abc"})

	got := d.WordsFormableFrom("aabc")

	if diff := cmp.Diff([]string{"ab", "abc"}, got); diff != "" {
		t.Errorf("WordsFormableFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestWordsFormableFromRespectsMultiplicity(t *testing.T) {
	d := NewDocumentFromLines([]string{"aa a aaa b"})

	assert.Equal(t, []string{"a", "aa"}, d.WordsFormableFrom("aa"))
	assert.Empty(t, d.WordsFormableFrom(""))
}
