package highlighter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func texts(segments []Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, seg.Text)
	}
	return out
}

func TestLineSegmentsCoverTheLine(t *testing.T) {
	tests := []struct {
		language string
		lines    []string
	}{
		{"plaintext", []string{"hello world", "", "bye"}},
		{"go", []string{"package main", "", "func main() { /* a", "b */ }"}},
		{"no-such-language", []string{"\tindented", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			h := New(tt.language, "monokai")
			for row, line := range tt.lines {
				got := strings.Join(texts(h.Line(tt.lines, row)), "")
				assert.Equal(t, line, got, "row %d", row)
			}
		})
	}
}

func TestLineOutOfRange(t *testing.T) {
	h := New("plaintext", "monokai")

	assert.Nil(t, h.Line([]string{"a"}, 1))
	assert.Nil(t, h.Line([]string{"a"}, -1))
}

func TestMarkTerm(t *testing.T) {
	lines := []string{"HELLO hello"}

	tests := []struct {
		name          string
		term          string
		caseSensitive bool
		want          []string
		marked        []string
	}{
		{"folded", "lo", false, []string{"HEL", "LO", " hel", "lo"}, []string{"LO", "lo"}},
		{"exact", "lo", true, []string{"HELLO hel", "lo"}, []string{"lo"}},
		{"absent", "xyz", false, []string{"HELLO hello"}, nil},
		{"cleared", "", false, []string{"HELLO hello"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New("plaintext", "monokai")
			mark := lipgloss.NewStyle().Bold(true)
			h.SetMarkStyle(mark)
			h.MarkTerm(tt.term, tt.caseSensitive)

			segments := h.Line(lines, 0)
			if diff := cmp.Diff(tt.want, texts(segments)); diff != "" {
				t.Errorf("Line() mismatch (-want +got):\n%s", diff)
			}

			var marked []string
			for _, seg := range segments {
				if seg.Style.GetBold() {
					marked = append(marked, seg.Text)
				}
			}
			assert.Equal(t, tt.marked, marked)
		})
	}
}

func TestInvalidateRetokenizes(t *testing.T) {
	h := New("plaintext", "monokai")

	assert.Equal(t, "one", strings.Join(texts(h.Line([]string{"one"}, 0)), ""))
	h.Invalidate()
	assert.Equal(t, "two", strings.Join(texts(h.Line([]string{"two"}, 0)), ""))
}
