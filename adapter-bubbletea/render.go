package bubble_adapter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// displayWidth is the number of terminal cells s occupies once rendered.
func displayWidth(s string) int {
	return uniseg.StringWidth(expandTabs(s))
}

func (m *Model) gutterWidth(lineCount int) int {
	if !m.showLineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(max(1, lineCount)))
	return min(max(4, digits)+1, 10)
}

// scrollHorizontally keeps the cursor column inside the visible text width.
func (m *Model) scrollHorizontally(content string, col, width int) {
	col = min(col, len(content))
	if m.leftCol > col {
		m.leftCol = col
	}
	for m.leftCol < col && displayWidth(content[m.leftCol:col]) >= width {
		m.leftCol++
	}
}

// renderVisibleSlice renders the visible lines of the active paragraph into
// the viewport, followed by the output of the last analysis command.
func (m *Model) renderVisibleSlice() {
	lines := m.editor.CurrentParagraph().Contents()
	state := m.editor.GetState()
	cursor := m.editor.GetCursor()
	cursor.Position.Row = min(max(cursor.Position.Row, 0), len(lines)-1)

	gutter := m.gutterWidth(len(lines))
	textWidth := max(m.viewport.Width-gutter, 1)
	height := max(m.viewport.Height-len(m.result), 1)

	m.scrollHorizontally(lines[cursor.Position.Row], cursor.Position.Col, textWidth)

	// result lines take rows from the text, the cursor row stays visible
	top := min(state.TopLine, cursor.Position.Row)
	if cursor.Position.Row >= top+height {
		top = cursor.Position.Row - height + 1
	}

	rendered := make([]string, 0, height+len(m.result))
	for i := range height {
		row := top + i
		if row >= len(lines) {
			if gutter > 0 {
				rendered = append(rendered, m.theme.LineNumberStyle.Width(gutter-1).Render("~"))
			} else {
				rendered = append(rendered, "")
			}
			continue
		}

		isCursorRow := row == cursor.Position.Row
		var sb strings.Builder
		if gutter > 0 {
			style := m.theme.LineNumberStyle
			if isCursorRow {
				style = m.theme.CurrentLineNumberStyle
			}
			sb.WriteString(style.Width(gutter - 1).Render(strconv.Itoa(row + 1)))
			sb.WriteByte(' ')
		}

		cursorCol := -1
		if isCursorRow && m.isFocused {
			cursorCol = cursor.Position.Col
		}
		left := 0
		if isCursorRow {
			left = m.leftCol
		}
		sb.WriteString(m.renderLine(lines, row, left, cursorCol, textWidth))
		rendered = append(rendered, sb.String())
	}

	for _, line := range m.result {
		rendered = append(rendered, m.theme.ResultStyle.Render(line))
	}

	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.YOffset = 0
}

// renderLine renders lines[row] from column left, drawing the cursor at
// cursorCol when it is not negative.
func (m *Model) renderLine(lines []string, row, left, cursorCol, width int) string {
	content := lines[row]
	var sb strings.Builder

	offset := 0
	for _, seg := range m.highlighter.Line(lines, row) {
		start, end := offset, offset+len(seg.Text)
		offset = end
		if end <= left {
			continue
		}

		text := seg.Text
		if start < left {
			text = text[left-start:]
			start = left
		}

		if cursorCol >= start && cursorCol < end {
			i := cursorCol - start
			sb.WriteString(seg.Style.Render(expandTabs(text[:i])))
			sb.WriteString(m.theme.CursorStyle.Render(expandTabs(text[i : i+1])))
			sb.WriteString(seg.Style.Render(expandTabs(text[i+1:])))
			continue
		}
		sb.WriteString(seg.Style.Render(expandTabs(text)))
	}

	if cursorCol == len(content) {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(sb.String())
}
