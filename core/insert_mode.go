package core

import "errors"

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) Enter(editor Editor) {
	editor.UpdateStatus("-- INSERT --")
	editor.UpdateCommand("")
}

func (m *insertMode) Exit(editor Editor) {}

func (m *insertMode) HandleKey(editor Editor, key KeyEvent) *Error {
	switch key.Key {
	case KeyEscape:
		editor.SetCommandMode()
		return nil

	case KeyBackspace:
		if err := editor.Backspace(); err != nil {
			if errors.Is(err, ErrStartOfBuffer) {
				return newError(ErrStartOfBufferId, err)
			}
			return newError(ErrOutOfRangeId, err)
		}
		return nil

	case KeyEnter:
		if err := editor.InsertNewline(); err != nil {
			return newError(ErrOutOfRangeId, err)
		}
		return nil

	case KeyTab:
		return insertRune(editor, '\t')

	case KeySpace:
		return insertRune(editor, ' ')

	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		// Moving against a boundary leaves the cursor where it is.
		_ = editor.Move(key.Key)
		return nil

	default:
		if key.Rune != 0 {
			return insertRune(editor, key.Rune)
		}
		// Ignore unknown special keys or modifiers without runes
		return nil
	}
}

func insertRune(editor Editor, r rune) *Error {
	if err := editor.InsertChar(r); err != nil {
		if errors.Is(err, ErrUnsupportedChar) {
			return newError(ErrUnsupportedCharId, err)
		}
		return newError(ErrOutOfRangeId, err)
	}
	return nil
}
