package core

import (
	"fmt"
	"log"
)

// State represents the current user-visible state of the editor
type State struct {
	Mode        Mode   // Current editing mode (Insert, Command)
	StatusLine  string // Content of the status line (bottom line)
	CommandLine string // Current command being typed
	Quit        bool   // Flag indicating if the editor should exit

	// Viewport information
	TopLine        int // First line of the active paragraph visible in the viewport
	ViewportHeight int // Number of lines that can be displayed
	ViewportWidth  int // Number of columns that can be displayed

	Message string   // Last message dispatched to the user
	Result  []string // Output of the last analysis command

	CaseSensitive bool // Default case sensitivity for :find
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode:           InsertMode,
		StatusLine:     "-- INSERT --",
		ViewportHeight: 24,
		ViewportWidth:  80,
	}
}

// Concrete implementation of Editor
type editor struct {
	doc    *Document
	active int // index of the paragraph the cursor lives in
	cursor Cursor

	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State

	fileName     string
	savedContent string

	storage      Storage
	clipboard    Clipboard
	updateSignal chan Signal
}

// New creates an editing session over an empty document. A nil storage
// falls back to the file system.
func New(storage Storage, clipboard Clipboard) Editor {
	if storage == nil {
		storage = NewFileStorage()
	}

	e := &editor{
		doc:          NewDocument(),
		modes:        make(map[Mode]EditorMode),
		state:        InitialState(),
		storage:      storage,
		clipboard:    clipboard,
		updateSignal: make(chan Signal, 100),
	}
	e.savedContent = e.doc.String()

	e.modes[InsertMode] = NewInsertMode()
	e.modes[CommandMode] = NewCommandMode()

	e.currentMode = e.modes[e.state.Mode]
	e.currentMode.Enter(e)

	return e
}

func (e *editor) GetDocument() *Document {
	return e.doc
}

func (e *editor) ActiveParagraph() int {
	return e.active
}

// SetActiveParagraph moves the cursor to the start of another paragraph.
func (e *editor) SetActiveParagraph(index int) error {
	if _, err := e.doc.ParagraphAt(index); err != nil {
		return err
	}
	e.active = index
	e.cursor.MoveToParagraphStart()
	e.state.TopLine = 0
	return nil
}

func (e *editor) CurrentParagraph() *Paragraph {
	if e.active >= e.doc.NumParagraphs() {
		e.active = e.doc.NumParagraphs() - 1
	}
	return e.doc.paragraphs[e.active]
}

func (e *editor) CurrentLine() *Line {
	p := e.CurrentParagraph()
	e.cursor.clamp(p)
	return p.lines[e.cursor.Position.Row]
}

func (e *editor) GetCursor() Cursor {
	return e.cursor
}

// SetCursor sets the cursor position, clamping it to the active paragraph.
func (e *editor) SetCursor(cursor Cursor) {
	cursor.clamp(e.CurrentParagraph())
	e.cursor = cursor
}

func (e *editor) GetMode() EditorMode {
	return e.currentMode
}

func (e *editor) setMode(mode Mode) {
	next, ok := e.modes[mode]
	if !ok {
		log.Printf("Editor: unknown mode %q", mode)
		return
	}
	if e.currentMode != nil {
		e.currentMode.Exit(e)
	}
	e.currentMode = next
	e.state.Mode = mode
	e.currentMode.Enter(e)
}

func (e *editor) SetInsertMode() {
	e.setMode(InsertMode)
}

func (e *editor) SetCommandMode() {
	e.setMode(CommandMode)
}

func (e *editor) StartCommand(text string) {
	e.setMode(CommandMode)
	if m, ok := e.currentMode.(*commandMode); ok {
		m.setBuffer(e, text)
	}
}

func (e *editor) IsInsertMode() bool {
	return e.state.Mode == InsertMode
}

func (e *editor) IsCommandMode() bool {
	return e.state.Mode == CommandMode
}

// HandleKey processes a single key event to completion.
func (e *editor) HandleKey(key KeyEvent) error {
	if e.currentMode == nil {
		return ErrInvalidMode
	}

	err := e.currentMode.HandleKey(e, key)

	e.ScrollViewport()

	if err != nil {
		return err
	}
	return nil
}

// --- Primitive edits ---

// InsertChar inserts a printable ASCII character or a tab at the cursor.
func (e *editor) InsertChar(ch rune) error {
	if ch != '\t' && (ch < 0x20 || ch >= 0x7f) {
		return fmt.Errorf("InsertChar: %w: %q", ErrUnsupportedChar, ch)
	}

	line := e.CurrentLine()
	if err := line.InsertAt(e.cursor.Position.Col, byte(ch)); err != nil {
		return err
	}
	e.cursor.Position.Col++
	return nil
}

// InsertNewline opens an empty line after the current one. Text right of
// the cursor stays where it is.
func (e *editor) InsertNewline() error {
	p := e.CurrentParagraph()
	e.cursor.clamp(p)

	if err := p.InsertLineAt(e.cursor.Position.Row+1, NewLine("")); err != nil {
		return err
	}
	e.cursor.Position.Row++
	e.cursor.Position.Col = 0
	return nil
}

// Backspace removes the character before the cursor, or merges the current
// line onto the previous one at column 0.
func (e *editor) Backspace() error {
	p := e.CurrentParagraph()
	e.cursor.clamp(p)
	row, col := e.cursor.Position.Row, e.cursor.Position.Col

	if col > 0 {
		if err := p.lines[row].RemoveAt(col - 1); err != nil {
			return err
		}
		e.cursor.Position.Col--
		return nil
	}

	if row == 0 {
		return ErrStartOfBuffer
	}

	prev, cur := p.lines[row-1], p.lines[row]
	prevLen := prev.Len()
	if err := p.RemoveLineAt(row); err != nil {
		return err
	}
	prev.appendLine(cur)
	e.cursor.Position = Position{Row: row - 1, Col: prevLen}
	return nil
}

// Move applies a navigation key to the cursor.
func (e *editor) Move(key KeyCode) error {
	p := e.CurrentParagraph()
	cursor := e.cursor
	cursor.clamp(p)

	var err error
	switch key {
	case KeyUp:
		err = cursor.MoveUp(p)
	case KeyDown:
		err = cursor.MoveDown(p)
	case KeyLeft:
		err = cursor.MoveLeftOrUp(p)
	case KeyRight:
		err = cursor.MoveRightOrDown(p)
	case KeyHome:
		cursor.MoveToLineStart()
	case KeyEnd:
		cursor.MoveToAfterLineEnd(p)
	case KeyPageUp:
		if e.active == 0 {
			return ErrStartOfBuffer
		}
		return e.SetActiveParagraph(e.active - 1)
	case KeyPageDown:
		if e.active >= e.doc.NumParagraphs()-1 {
			return ErrEndOfBuffer
		}
		return e.SetActiveParagraph(e.active + 1)
	default:
		return fmt.Errorf("Move: %w: %v", ErrInvalidCommand, KeyEvent{Key: key})
	}

	if err != nil {
		return err
	}
	e.cursor = cursor
	return nil
}

// --- State ---

func (e *editor) GetState() State {
	return e.state
}

// SetState allows internal updates (e.g., from modes)
func (e *editor) SetState(state State) {
	e.state = state
}

// UpdateStatus is a helper for modes to update the status line
func (e *editor) UpdateStatus(status string) {
	e.state.StatusLine = status
}

// UpdateCommand is a helper for modes to update the command line
func (e *editor) UpdateCommand(cmd string) {
	e.state.CommandLine = cmd
}

func (e *editor) SetCaseSensitive(caseSensitive bool) {
	e.state.CaseSensitive = caseSensitive
}

func (e *editor) SetMaxCommandHistory(n int) {
	if m, ok := e.modes[CommandMode].(*commandMode); ok {
		m.maxHistory = n
	}
}

// --- Resources ---

func (e *editor) FileName() string {
	return e.fileName
}

// SetFileName names the resource the next plain save writes to, without
// loading it.
func (e *editor) SetFileName(name string) {
	e.fileName = name
}

func (e *editor) IsModified() bool {
	return e.savedContent != e.doc.String()
}

// Open replaces the document with the named resource. On failure the
// document, cursor and file name are left untouched.
func (e *editor) Open(name string) error {
	if name == "" {
		return ErrNoFileName
	}

	doc := NewDocument()
	if err := doc.Load(e.storage, name); err != nil {
		log.Printf("Editor: open failed: %v", err)
		return newError(ErrFailedToOpenId, err)
	}

	e.doc = doc
	e.active = 0
	e.cursor = Cursor{}
	e.cursor.MoveToParagraphEnd(e.CurrentParagraph())
	e.fileName = name
	e.savedContent = doc.String()
	e.state.TopLine = 0
	e.ScrollViewport()

	log.Printf("Editor: opened %s (%d lines)", name, doc.LineCount())
	e.DispatchSignal(OpenSignal{path: name})
	return nil
}

// Save writes the document to name, or to the current file when name is
// empty.
func (e *editor) Save(name string) error {
	if name == "" {
		name = e.fileName
	}
	if name == "" {
		return ErrNoFileName
	}

	if err := e.doc.SaveTo(e.storage, name); err != nil {
		log.Printf("Editor: save failed: %v", err)
		return newError(ErrFailedToSaveId, err)
	}

	e.fileName = name
	e.savedContent = e.doc.String()

	lines := len(e.doc.Lines())
	log.Printf("Editor: saved %s (%d lines)", name, lines)
	e.DispatchSignal(SaveSignal{path: name, lines: lines})
	return nil
}

// Copy writes the current line to the clipboard.
func (e *editor) Copy() error {
	if e.clipboard == nil {
		return ErrClipboard
	}

	content := e.CurrentLine().Content()
	if err := e.clipboard.Write(content); err != nil {
		return newError(ErrCopyFailedId, fmt.Errorf("failed to copy to clipboard: %w", err))
	}

	e.DispatchSignal(YankSignal{content: content})
	return nil
}

// Paste inserts the clipboard text at the cursor. Line breaks open new lines
// the same way Enter does. Nothing is inserted if any character is unsupported.
func (e *editor) Paste() (int, error) {
	if e.clipboard == nil {
		return 0, ErrClipboard
	}

	content, err := e.clipboard.Read()
	if err != nil {
		return 0, newError(ErrPasteFailedId, fmt.Errorf("failed to read clipboard: %w", err))
	}

	for _, r := range content {
		if r != '\n' && r != '\r' && r != '\t' && (r < 0x20 || r >= 0x7f) {
			return 0, newError(ErrPasteFailedId, fmt.Errorf("Paste: %w: %q", ErrUnsupportedChar, r))
		}
	}

	n := 0
	for _, r := range content {
		switch r {
		case '\r':
			continue
		case '\n':
			err = e.InsertNewline()
		default:
			err = e.InsertChar(r)
		}
		if err != nil {
			return n, err
		}
		n++
	}

	e.DispatchSignal(PasteSignal{totalChars: n})
	return n, nil
}

// ScrollViewport ensures the cursor is within the visible area
func (e *editor) ScrollViewport() {
	row := e.cursor.Position.Row

	if row < e.state.TopLine {
		e.state.TopLine = row
	} else if e.state.ViewportHeight > 0 && row >= e.state.TopLine+e.state.ViewportHeight {
		// Scroll down so cursor is on the last line of the viewport
		e.state.TopLine = row - e.state.ViewportHeight + 1
	}

	if e.state.TopLine < 0 {
		e.state.TopLine = 0
	}
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}

func (e *editor) Quit() {
	e.state.Quit = true
	select {
	case e.updateSignal <- QuitSignal{}:
	default:
		log.Println("Editor: Failed to send QuitSignal - channel full or not ready")
	}
}
