package core

type Mode string

const (
	InsertMode  Mode = "insert"
	CommandMode Mode = "command"
)

// EditorMode handles the key events the editor receives while it is active.
type EditorMode interface {
	Name() Mode
	// HandleKey applies one key event. The event is either fully applied or
	// rejected with an error, never half applied.
	HandleKey(editor Editor, key KeyEvent) *Error
	Enter(editor Editor) // Called when entering the mode
	Exit(editor Editor)  // Called when exiting the mode
}
