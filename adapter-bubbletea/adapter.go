package bubble_adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ogguyhere/dos-and-text-editor/adapter-bubbletea/highlighter"
	editor "github.com/ogguyhere/dos-and-text-editor/core"
)

const defaultMessageDuration = 3 * time.Second

type Theme struct {
	InsertModeStyle        lipgloss.Style
	CommandModeStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorStyle            lipgloss.Style
	SearchMatchStyle       lipgloss.Style
	ResultStyle            lipgloss.Style
}

var DefaultTheme = Theme{
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	CommandModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
	SearchMatchStyle:       lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	ResultStyle:            lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
}

type Model struct {
	editor          editor.Editor
	viewport        viewport.Model
	highlighter     *highlighter.Highlighter
	keyMap          KeyMap
	help            help.Model
	width           int
	height          int
	showLineNumbers bool
	showStatusLine  bool
	showHelp        bool
	theme           Theme
	StatusLineFunc  func() string
	err             error
	message         string
	result          []string // output of the last analysis command, shown under the text
	leftCol         int      // first column of the cursor line that is visible
	messageDuration time.Duration
	clearMsgCancel  context.CancelFunc
	isFocused       bool
}

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

type MessageMsg struct {
	ID      string
	Message string
}

type ResultMsg struct {
	Command string
	Lines   []string
}

type SaveMsg struct {
	Path  string
	Lines int
}

type OpenMsg struct {
	Path string
}

type YankMsg struct {
	Content string
}

type PasteMsg struct {
	Chars int
}

type QuitMsg struct{}

type clearMsg struct{}

type commandMsg struct{}

func (m *Model) dispatchClearMsg() tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.messageDuration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

// New creates an editor model backed by the file system and the system
// clipboard.
func New(width, height int) Model {
	return NewWithEditor(editor.New(editor.NewFileStorage(), &SystemClipboard{}), width, height)
}

// NewWithEditor wraps an existing editing session.
func NewWithEditor(ed editor.Editor, width, height int) Model {
	h := highlighter.New("plaintext", "monokai")
	h.SetMarkStyle(DefaultTheme.SearchMatchStyle)

	m := Model{
		editor:          ed,
		viewport:        viewport.New(width, max(height-2, 1)),
		highlighter:     h,
		keyMap:          DefaultKeyMap(),
		help:            help.New(),
		showLineNumbers: true,
		showStatusLine:  true,
		theme:           DefaultTheme,
		messageDuration: defaultMessageDuration,
	}
	m.help.ShowAll = true

	m.SetSize(width, height)

	return m
}

// SetSize resizes the editor. Two rows are reserved for the status and
// command lines, more when help is shown.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	reserved := 1
	if m.showStatusLine {
		reserved++
	}
	if m.showHelp {
		m.help.Width = width
		reserved += lipgloss.Height(m.help.View(m.keyMap))
	}

	m.viewport.Width = width
	m.viewport.Height = max(height-reserved, 1)

	state := m.editor.GetState()
	state.ViewportWidth = m.viewport.Width
	state.ViewportHeight = m.viewport.Height
	m.editor.SetState(state)
	m.editor.ScrollViewport()

	m.renderVisibleSlice()
}

// Open loads a file into the editor.
func (m *Model) Open(path string) error {
	if err := m.editor.Open(path); err != nil {
		return err
	}
	m.highlighter.Invalidate()
	m.leftCol = 0
	m.renderVisibleSlice()
	return nil
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.highlighter.SetMarkStyle(theme.SearchMatchStyle)
}

// WithKeyMap replaces the control key shortcuts.
func (m *Model) WithKeyMap(keyMap KeyMap) {
	m.keyMap = keyMap
}

// SetLanguage sets the chroma lexer and style used to colour the text.
func (m *Model) SetLanguage(language string, theme string) {
	term := m.highlighter.Term()
	m.highlighter = highlighter.New(language, theme)
	m.highlighter.SetMarkStyle(m.theme.SearchMatchStyle)
	m.highlighter.MarkTerm(term, true)
	m.renderVisibleSlice()
}

// SetMessageDuration sets how long messages and errors stay on the command line.
func (m *Model) SetMessageDuration(d time.Duration) {
	if d <= 0 {
		d = defaultMessageDuration
	}
	m.messageDuration = d
}

// HideLineNumbers controls whether to show line numbers in the viewport.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
	m.renderVisibleSlice()
}

// HideStatusLine controls whether to show the status line at the bottom of the viewport.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// HasChanges checks if the editor has unsaved changes
func (m *Model) HasChanges() bool {
	return m.editor.IsModified()
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

// Focus sets the editor to focused state.
func (m *Model) Focus() {
	m.isFocused = true
	m.renderVisibleSlice()
}

// Blur sets the editor to unfocused state.
func (m *Model) Blur() {
	m.isFocused = false
	m.renderVisibleSlice()
}

// IsFocused returns whether the editor is currently focused.
func (m *Model) IsFocused() bool {
	return m.isFocused
}

// IsInsertMode returns whether the editor is in insert mode.
func (m *Model) IsInsertMode() bool {
	return m.editor.IsInsertMode()
}

// IsCommandMode returns whether the editor is in command mode.
func (m *Model) IsCommandMode() bool {
	return m.editor.IsCommandMode()
}

// Message returns the message currently shown on the command line.
func (m *Model) Message() string {
	return m.message
}

// Err returns the error currently shown on the command line.
func (m *Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		if key.Matches(msg, m.keyMap.ForceQuit) {
			return m, tea.Quit
		}

		cmds = append(cmds, m.handleKey(msg))

		if m.editor.GetState().Quit {
			return m, tea.Quit
		}

	case MessageMsg:
		m.message = msg.Message
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg(), m.listenForEditorUpdate())

	case ErrorMsg:
		m.message = ""
		m.err = msg.Error
		cmds = append(cmds, m.dispatchClearMsg(), m.listenForEditorUpdate())

	case ResultMsg:
		m.result = msg.Lines
		cmds = append(cmds, m.listenForEditorUpdate())

	case OpenMsg:
		m.highlighter.Invalidate()
		m.leftCol = 0
		cmds = append(cmds, m.listenForEditorUpdate())

	case SaveMsg, YankMsg, PasteMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case commandMsg:
		m.message = ""
		m.err = nil
		if m.clearMsgCancel != nil {
			m.clearMsgCancel()
		}
		cmds = append(cmds, m.listenForEditorUpdate())

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
		m.highlighter.MarkTerm("", true)

	case QuitMsg:
		return m, tea.Quit
	}

	// the editor owns scrolling for keys
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var viewportCmd tea.Cmd
		m.viewport, viewportCmd = m.viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	m.renderVisibleSlice()

	return m, tea.Batch(cmds...)
}

// handleKey runs control key shortcuts in insert mode and forwards every
// other key to the editor.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.result = nil

	if key.Matches(msg, m.keyMap.Help) {
		m.showHelp = !m.showHelp
		m.SetSize(m.width, m.height)
		return nil
	}

	if m.editor.IsInsertMode() {
		for _, sc := range m.keyMap.shortcuts() {
			if !key.Matches(msg, sc.binding) {
				continue
			}
			if sc.prefill != "" {
				m.editor.StartCommand(sc.prefill)
				return nil
			}
			return m.runCommand(sc.command)
		}
	}

	if m.editor.IsCommandMode() && msg.Type == tea.KeyEnter {
		m.trackSearchTerm(m.editor.GetState().CommandLine)
	}

	for _, keyEvent := range convertBubbleKeys(msg) {
		if err := m.editor.HandleKey(keyEvent); err != nil {
			return m.showError(err)
		}
	}
	m.editor.ScrollViewport()
	return nil
}

func (m *Model) runCommand(command string) tea.Cmd {
	err := m.editor.ExecuteCommand(command)
	m.editor.ScrollViewport()
	if err != nil {
		return m.showError(err)
	}
	return nil
}

func (m *Model) showError(err error) tea.Cmd {
	m.message = ""
	m.err = err
	return m.dispatchClearMsg()
}

// trackSearchTerm marks the argument of a search command so matches stand
// out until the result message clears.
func (m *Model) trackSearchTerm(commandLine string) {
	command := strings.TrimSpace(strings.TrimPrefix(commandLine, ":"))
	name, rest, _ := strings.Cut(command, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "find":
		m.highlighter.MarkTerm(rest, m.editor.GetState().CaseSensitive)
	case "findcase", "sentence", "sub", "substring", "count":
		m.highlighter.MarkTerm(rest, true)
	}
}

func (m Model) View() string {
	state := m.editor.GetState()

	content := m.viewport.View()

	commandLine := m.theme.CommandLineStyle.Render(state.CommandLine)

	if m.message != "" {
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}

	if m.err != nil {
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	}

	paddingWidth := m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	sections := []string{content}

	if m.showStatusLine {
		statusLine := m.getStatusLine()
		paddingWidth = m.width - lipgloss.Width(statusLine)
		if paddingWidth > 0 {
			statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
		}
		sections = append(sections, statusLine)
	}

	sections = append(sections, commandLine)

	if m.showHelp {
		sections = append(sections, m.help.View(m.keyMap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) getStatusLine() string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	state := m.editor.GetState()

	var statusLine string
	switch state.Mode {
	case editor.InsertMode:
		statusLine = m.theme.InsertModeStyle.Render(" INSERT ")
	case editor.CommandMode:
		statusLine = m.theme.CommandModeStyle.Render(" COMMAND ")
	}

	name := m.editor.FileName()
	if name == "" {
		name = "[No Name]"
	}
	if m.editor.IsModified() {
		name += " [+]"
	}

	cursor := m.editor.GetCursor()
	doc := m.editor.GetDocument()
	cursorInfo := fmt.Sprintf("¶ %d/%d  %d:%d ",
		m.editor.ActiveParagraph()+1, doc.NumParagraphs(),
		cursor.Position.Row+1, cursor.Position.Col+1)

	left := " " + name
	width := m.width - (lipgloss.Width(statusLine) + lipgloss.Width(left) + lipgloss.Width(cursorInfo))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(left + gap + cursorInfo)

	return statusLine
}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	updates := m.editor.GetUpdateSignalChan()
	return func() tea.Msg {
		for signal := range updates {
			if msg := signalToMsg(signal); msg != nil {
				return msg
			}
		}
		return nil
	}
}

// signalToMsg translates an editor signal into the message the model
// handles. Signals without a message are skipped.
func signalToMsg(signal editor.Signal) tea.Msg {
	switch signal := signal.(type) {
	case editor.MessageSignal:
		id, message := signal.Value()
		return MessageMsg{ID: id, Message: message}

	case editor.ErrorSignal:
		id, err := signal.Value()
		return ErrorMsg{ID: id, Error: err}

	case editor.ResultSignal:
		command, lines := signal.Value()
		return ResultMsg{Command: command, Lines: lines}

	case editor.YankSignal:
		return YankMsg{Content: signal.Value()}

	case editor.PasteSignal:
		return PasteMsg{Chars: signal.Value()}

	case editor.SaveSignal:
		path, lines := signal.Value()
		return SaveMsg{Path: path, Lines: lines}

	case editor.OpenSignal:
		return OpenMsg{Path: signal.Value()}

	case editor.EnterCommandModeSignal:
		return commandMsg{}

	case editor.QuitSignal:
		return QuitMsg{}
	}

	return nil
}

// convertBubbleKeys converts a bubbletea key into editor key events. Pasted
// text arrives as a single message carrying many runes.
func convertBubbleKeys(msg tea.KeyMsg) []editor.KeyEvent {
	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 {
		return []editor.KeyEvent{convertBubbleKey(msg)}
	}

	events := make([]editor.KeyEvent, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		switch r {
		case '\r':
			continue
		case '\n':
			events = append(events, editor.KeyEvent{Key: editor.KeyEnter})
		default:
			events = append(events, editor.KeyEvent{Rune: r})
		}
	}
	return events
}

// Convert Bubbletea key to editor.Key
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = rune(msg.Runes[0])
	}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}
	name := msg.String()
	if strings.Contains(name, "ctrl+") {
		key.Modifiers |= editor.ModCtrl
	}
	if strings.Contains(name, "shift+") {
		key.Modifiers |= editor.ModShift
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tea.KeyUp, tea.KeyShiftUp:
		key.Key = editor.KeyUp
	case tea.KeyDown, tea.KeyShiftDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft, tea.KeyShiftLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight, tea.KeyShiftRight:
		key.Key = editor.KeyRight
	case tea.KeyHome, tea.KeyShiftHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd, tea.KeyShiftEnd:
		key.Key = editor.KeyEnd
	case tea.KeyPgUp:
		key.Key = editor.KeyPageUp
	case tea.KeyPgDown:
		key.Key = editor.KeyPageDown
	}

	return key
}
