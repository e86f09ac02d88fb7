package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageWriteRead(t *testing.T) {
	s := NewFileStorage()
	path := filepath.Join(t.TempDir(), "doc.txt")

	require.NoError(t, s.WriteLines(path, []string{"alpha", "", "beta"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\n\nbeta\n", string(raw))

	lines, err := s.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "", "beta"}, lines)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o644), info.Mode().Perm())
}

func TestFileStorageStripsCarriageReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\r\nthree"), 0o644))

	lines, err := NewFileStorage().ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestFileStorageAppend(t *testing.T) {
	s := NewFileStorage()
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, s.AppendLines(path, []string{"a"}))
	require.NoError(t, s.AppendLines(path, []string{"b", "c"}))

	lines, err := s.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestFileStorageErrors(t *testing.T) {
	s := NewFileStorage()
	dir := t.TempDir()

	_, err := s.ReadLines(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = s.WriteLines(filepath.Join(dir, "no", "such", "dir.txt"), []string{"x"})
	assert.ErrorIs(t, err, ErrIO)
}

func TestFileStorageEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	d := NewDocumentFromLines([]string{"previous"})
	require.NoError(t, d.Load(NewFileStorage(), path))
	assert.Equal(t, []string{""}, d.Lines())
}

func TestMemoryStorageFailures(t *testing.T) {
	s := NewMemoryStorage()
	s.Files["locked"] = []string{"secret"}
	s.Fail["locked"] = true

	_, err := s.ReadLines("locked")
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.ErrorIs(t, s.WriteLines("locked", nil), ErrIO)
	assert.ErrorIs(t, s.AppendLines("locked", nil), ErrIO)

	_, err = s.ReadLines("absent")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMergeLines(t *testing.T) {
	got := MergeLines([]string{"a", "b"}, []string{"c"})
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("MergeLines() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, MergeLines(nil, nil))
}

func TestMergeToNew(t *testing.T) {
	s := NewMemoryStorage()
	s.Files["a"] = []string{"1", "2"}
	s.Files["b"] = []string{"3"}

	require.NoError(t, MergeToNew(s, "a", "b", "out"))
	assert.Equal(t, []string{"1", "2", "3"}, s.Files["out"])
	assert.Equal(t, []string{"1", "2"}, s.Files["a"])

	err := MergeToNew(s, "a", "missing", "out2")
	assert.ErrorIs(t, err, ErrIO)
	assert.NotContains(t, s.Files, "out2")
}

func TestMergeIntoAppendsToTarget(t *testing.T) {
	s := NewMemoryStorage()
	s.Files["target"] = []string{"first"}
	s.Files["source"] = []string{"second", "third"}

	require.NoError(t, MergeInto(s, "target", "source"))
	assert.Equal(t, []string{"first", "second", "third"}, s.Files["target"])
}

func TestMergeIntoFiles(t *testing.T) {
	s := NewFileStorage()
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	source := filepath.Join(dir, "source.txt")
	require.NoError(t, s.WriteLines(target, []string{"x"}))
	require.NoError(t, s.WriteLines(source, []string{"y", "z"}))

	require.NoError(t, MergeInto(s, target, source))

	lines, err := s.ReadLines(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, lines)
}

func TestEncodeDecodeResource(t *testing.T) {
	s := NewMemoryStorage()
	s.Files["r"] = []string{"aaab", "", "zz"}

	require.NoError(t, EncodeResource(s, "r"))
	assert.Equal(t, []string{"a3b1", "", "z2"}, s.Files["r"])

	require.NoError(t, DecodeResource(s, "r"))
	assert.Equal(t, []string{"aaab", "", "zz"}, s.Files["r"])

	s.Files["bad"] = []string{"abc"}
	assert.Error(t, DecodeResource(s, "bad"))
	assert.Equal(t, []string{"abc"}, s.Files["bad"], "a failed decode must not rewrite the resource")
}
