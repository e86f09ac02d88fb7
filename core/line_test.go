package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineInsertRemoveRoundTrip(t *testing.T) {
	const original = "hello, world"

	for pos := 0; pos <= len(original); pos++ {
		line := NewLine(original)

		require.NoError(t, line.InsertAt(pos, 'X'))
		assert.Equal(t, len(original)+1, line.Len())

		require.NoError(t, line.RemoveAt(pos))
		assert.Equal(t, original, line.Content(), "position %d", pos)
	}
}

func TestLineInsertAt(t *testing.T) {
	line := NewLine("ac")

	require.NoError(t, line.InsertAt(1, 'b'))
	require.NoError(t, line.InsertAt(3, 'd'))
	require.NoError(t, line.InsertAt(0, '>'))

	assert.Equal(t, ">abcd", line.Content())
}

func TestLineOutOfRange(t *testing.T) {
	line := NewLine("abc")

	assert.ErrorIs(t, line.InsertAt(-1, 'x'), ErrOutOfRange)
	assert.ErrorIs(t, line.InsertAt(4, 'x'), ErrOutOfRange)
	assert.ErrorIs(t, line.RemoveAt(3), ErrOutOfRange)
	assert.ErrorIs(t, line.RemoveAt(-1), ErrOutOfRange)

	_, err := line.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, "abc", line.Content(), "failed operations must not modify the line")
}

func TestLineAt(t *testing.T) {
	line := NewLine("xyz")

	c, err := line.At(2)
	require.NoError(t, err)
	assert.Equal(t, byte('z'), c)
}

func TestEmptyLine(t *testing.T) {
	line := NewLine("")

	assert.Equal(t, 0, line.Len())
	assert.Equal(t, "", line.Content())
	assert.ErrorIs(t, line.RemoveAt(0), ErrOutOfRange)

	require.NoError(t, line.InsertAt(0, 'a'))
	assert.Equal(t, "a", line.Content())
}

func TestLineSetContent(t *testing.T) {
	line := NewLine("old text")
	line.SetContent("new")

	assert.Equal(t, "new", line.Content())
	assert.Equal(t, 3, line.Len())
}
