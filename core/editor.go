package core

// Position represents a location inside the active paragraph
type Position struct {
	Row int // Zero-indexed line within the active paragraph
	Col int // Zero-indexed column (character position in the line)
}

// Editor is the editing session: it owns the document, the cursor and the
// active paragraph, and is the only component that mutates the cursor.
type Editor interface {
	// Document access
	GetDocument() *Document
	ActiveParagraph() int
	SetActiveParagraph(index int) error
	CurrentParagraph() *Paragraph
	CurrentLine() *Line

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor)

	// Mode handling
	GetMode() EditorMode
	SetInsertMode()
	SetCommandMode()
	StartCommand(text string) // Enter command mode with a prefilled command line
	IsInsertMode() bool
	IsCommandMode() bool

	// Event handling
	HandleKey(key KeyEvent) error

	// Primitive edits, each relative to the cursor
	InsertChar(ch rune) error
	InsertNewline() error
	Backspace() error
	Move(key KeyCode) error

	// State Management
	GetState() State
	SetState(State)
	UpdateStatus(string)
	UpdateCommand(string)
	SetCaseSensitive(bool)
	SetMaxCommandHistory(int)

	// Command execution
	ExecuteCommand(cmd string) error

	// Resources
	Open(name string) error
	Save(name string) error
	FileName() string
	SetFileName(name string)
	IsModified() bool

	Copy() error         // Copy the current line to the clipboard
	Paste() (int, error) // Paste from clipboard

	ScrollViewport()
	GetUpdateSignalChan() <-chan Signal
	DispatchError(id ErrorId, err error)
	DispatchMessage(args ...string)
	DispatchSignal(signal Signal)
	Quit()
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
