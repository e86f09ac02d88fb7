package core

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LineReader reads a named resource as an ordered sequence of lines.
type LineReader interface {
	ReadLines(name string) ([]string, error)
}

// LineWriter writes an ordered sequence of lines to a named resource.
type LineWriter interface {
	WriteLines(name string, lines []string) error
	AppendLines(name string, lines []string) error
}

// Storage is the external resource collaborator consumed by the editor.
type Storage interface {
	LineReader
	LineWriter
}

// maxLineLength is the longest line read from or decoded into a resource.
const maxLineLength = 16 * 1024 * 1024

func ioError(op, name string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, name, ErrIO, err)
}

// FileStorage stores resources as plain text files with '\n' terminated lines.
type FileStorage struct {
	Perm fs.FileMode
}

func NewFileStorage() *FileStorage {
	return &FileStorage{Perm: 0o644}
}

func (s *FileStorage) ReadLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, ioError("read", name, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("read", name, err)
	}
	return lines, nil
}

// WriteLines replaces the file through a temporary sibling so a failed write
// never leaves a partially written target.
func (s *FileStorage) WriteLines(name string, lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return ioError("write", name, err)
	}
	defer os.Remove(tmp.Name())

	if err := writeLines(tmp, lines); err != nil {
		tmp.Close()
		return ioError("write", name, err)
	}
	if err := tmp.Close(); err != nil {
		return ioError("write", name, err)
	}
	if err := os.Chmod(tmp.Name(), s.perm()); err != nil {
		return ioError("write", name, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return ioError("write", name, err)
	}
	return nil
}

func (s *FileStorage) AppendLines(name string, lines []string) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, s.perm())
	if err != nil {
		return ioError("append", name, err)
	}
	if err := writeLines(f, lines); err != nil {
		f.Close()
		return ioError("append", name, err)
	}
	if err := f.Close(); err != nil {
		return ioError("append", name, err)
	}
	return nil
}

func (s *FileStorage) perm() fs.FileMode {
	if s.Perm == 0 {
		return 0o644
	}
	return s.Perm
}

func writeLines(f *os.File, lines []string) error {
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// MemoryStorage keeps resources in memory. Names listed in Fail make every
// operation on them fail with ErrIO.
type MemoryStorage struct {
	Files map[string][]string
	Fail  map[string]bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		Files: make(map[string][]string),
		Fail:  make(map[string]bool),
	}
}

func (s *MemoryStorage) ReadLines(name string) ([]string, error) {
	if s.Fail[name] {
		return nil, ioError("read", name, fs.ErrPermission)
	}
	lines, ok := s.Files[name]
	if !ok {
		return nil, ioError("read", name, fs.ErrNotExist)
	}
	return append([]string(nil), lines...), nil
}

func (s *MemoryStorage) WriteLines(name string, lines []string) error {
	if s.Fail[name] {
		return ioError("write", name, fs.ErrPermission)
	}
	s.Files[name] = append([]string(nil), lines...)
	return nil
}

func (s *MemoryStorage) AppendLines(name string, lines []string) error {
	if s.Fail[name] {
		return ioError("append", name, fs.ErrPermission)
	}
	s.Files[name] = append(s.Files[name], lines...)
	return nil
}
