package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Segment is a run of bytes of one line rendered with a single style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Highlighter colours the lines of a paragraph with a chroma lexer and marks
// occurrences of a search term on top of the syntax colours.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	styleCache map[chroma.TokenType]lipgloss.Style
	markStyle  lipgloss.Style

	term     string
	foldTerm bool

	cacheMutex sync.RWMutex
	cacheKey   string           // joined lines the cache was built from
	cache      [][]chroma.Token // tokens per line
}

// New creates a highlighter for a chroma language and style name. Unknown
// names fall back to plain text and the default chroma style.
func New(language string, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
		markStyle:  lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	}
}

// SetMarkStyle changes the style used for search term occurrences.
func (h *Highlighter) SetMarkStyle(style lipgloss.Style) {
	h.markStyle = style
}

// MarkTerm highlights every occurrence of term. An empty term clears the mark.
func (h *Highlighter) MarkTerm(term string, caseSensitive bool) {
	h.term = term
	h.foldTerm = !caseSensitive
}

// Term returns the marked search term.
func (h *Highlighter) Term() string {
	return h.term
}

// Invalidate drops cached tokens.
func (h *Highlighter) Invalidate() {
	h.cacheMutex.Lock()
	defer h.cacheMutex.Unlock()
	h.cacheKey = ""
	h.cache = nil
}

// tokenize splits the token stream of the joined lines back into lines.
// Multi-line constructs need the whole paragraph, not one line at a time.
func (h *Highlighter) tokenize(lines []string) [][]chroma.Token {
	key := strings.Join(lines, "\n")

	h.cacheMutex.RLock()
	if h.cache != nil && h.cacheKey == key {
		defer h.cacheMutex.RUnlock()
		return h.cache
	}
	h.cacheMutex.RUnlock()

	out := make([][]chroma.Token, len(lines))
	if iterator, err := h.lexer.Tokenise(nil, key); err == nil {
		row := 0
		for _, token := range iterator.Tokens() {
			value := token.Value
			for row < len(out) {
				before, after, found := strings.Cut(value, "\n")
				if before != "" {
					out[row] = append(out[row], chroma.Token{Type: token.Type, Value: before})
				}
				if !found {
					break
				}
				row++
				value = after
			}
		}
	}

	h.cacheMutex.Lock()
	h.cacheKey = key
	h.cache = out
	h.cacheMutex.Unlock()

	return out
}

// Line returns the styled segments of lines[row]. The segment texts always
// concatenate to exactly lines[row].
func (h *Highlighter) Line(lines []string, row int) []Segment {
	if row < 0 || row >= len(lines) {
		return nil
	}
	content := lines[row]

	var segments []Segment
	total := 0
	for _, token := range h.tokenize(lines)[row] {
		segments = append(segments, Segment{Text: token.Value, Style: h.styleFor(token.Type)})
		total += len(token.Value)
	}
	if total != len(content) {
		segments = []Segment{{Text: content, Style: lipgloss.NewStyle()}}
	}

	return h.mark(content, segments)
}

// mark splits segments at search term boundaries and restyles the matches.
func (h *Highlighter) mark(content string, segments []Segment) []Segment {
	if h.term == "" {
		return segments
	}

	haystack, needle := content, h.term
	if h.foldTerm {
		haystack, needle = lowerASCII(haystack), lowerASCII(needle)
	}

	marked := make([]bool, len(content))
	found := false
	for from := 0; from <= len(haystack)-len(needle); {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			break
		}
		for j := from + i; j < from+i+len(needle); j++ {
			marked[j] = true
		}
		found = true
		from += i + len(needle)
	}
	if !found {
		return segments
	}

	var out []Segment
	offset := 0
	for _, seg := range segments {
		start := 0
		for start < len(seg.Text) {
			end := start
			m := marked[offset+start]
			for end < len(seg.Text) && marked[offset+end] == m {
				end++
			}
			style := seg.Style
			if m {
				style = h.markStyle
			}
			out = append(out, Segment{Text: seg.Text[start:end], Style: style})
			start = end
		}
		offset += len(seg.Text)
	}
	return out
}

// styleFor converts a chroma token type to a lipgloss style.
func (h *Highlighter) styleFor(tokenType chroma.TokenType) lipgloss.Style {
	h.cacheMutex.RLock()
	style, ok := h.styleCache[tokenType]
	h.cacheMutex.RUnlock()
	if ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.cacheMutex.Lock()
	h.styleCache[tokenType] = style
	h.cacheMutex.Unlock()

	return style
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
