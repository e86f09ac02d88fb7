package core

import "fmt"

// MergeLines returns all lines of first followed by all lines of second.
func MergeLines(first, second []string) []string {
	out := make([]string, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

// MergeInto appends the lines of source onto target.
func MergeInto(s Storage, target, source string) error {
	lines, err := s.ReadLines(source)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	if err := s.AppendLines(target, lines); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	return nil
}

// MergeToNew writes the lines of a followed by the lines of b to dest. dest
// is not touched when either input cannot be read.
func MergeToNew(s Storage, a, b, dest string) error {
	first, err := s.ReadLines(a)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	second, err := s.ReadLines(b)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	if err := s.WriteLines(dest, MergeLines(first, second)); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	return nil
}

// EncodeResource run-length encodes the named resource line by line and
// writes the result back to it.
func EncodeResource(s Storage, name string) error {
	lines, err := s.ReadLines(name)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := s.WriteLines(name, EncodeLines(lines)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// DecodeResource reverses EncodeResource.
func DecodeResource(s Storage, name string) error {
	lines, err := s.ReadLines(name)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	decoded, err := DecodeLines(lines)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	if err := s.WriteLines(name, decoded); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
