package core

type commandMode struct {
	commandBuffer string
	history       []string
	historyPos    int // len(history) when not browsing
	maxHistory    int
}

func NewCommandMode() EditorMode  { return &commandMode{maxHistory: 50} }
func (m *commandMode) Name() Mode { return CommandMode }

func (m *commandMode) Enter(editor Editor) {
	editor.DispatchSignal(EnterCommandModeSignal{})
	m.commandBuffer = "" // Clear buffer on entry
	m.historyPos = len(m.history)
	editor.UpdateStatus("-- COMMAND --")
	editor.UpdateCommand(":") // Show prompt
}

func (m *commandMode) Exit(editor Editor) {
	editor.UpdateCommand("") // Clear command line on exit
}

func (m *commandMode) setBuffer(editor Editor, text string) {
	m.commandBuffer = text
	editor.UpdateCommand(":" + m.commandBuffer)
}

func (m *commandMode) remember(cmd string) {
	if cmd == "" || (len(m.history) > 0 && m.history[len(m.history)-1] == cmd) {
		return
	}
	m.history = append(m.history, cmd)
	if m.maxHistory > 0 && len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
}

func (m *commandMode) HandleKey(editor Editor, key KeyEvent) *Error {
	switch key.Key {
	case KeyEscape:
		editor.SetInsertMode()
		return nil

	case KeyBackspace:
		if len(m.commandBuffer) > 0 {
			m.setBuffer(editor, m.commandBuffer[:len(m.commandBuffer)-1])
		} else {
			// Backspace on empty command line goes back to editing
			editor.SetInsertMode()
		}
		return nil

	case KeyUp:
		if m.historyPos > 0 {
			m.historyPos--
			m.setBuffer(editor, m.history[m.historyPos])
		}
		return nil

	case KeyDown:
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.setBuffer(editor, m.history[m.historyPos])
		} else {
			m.historyPos = len(m.history)
			m.setBuffer(editor, "")
		}
		return nil

	case KeyEnter:
		cmd := m.commandBuffer
		m.remember(cmd)
		// Leave command mode before executing so commands may switch modes
		editor.SetInsertMode()
		if err := editor.ExecuteCommand(cmd); err != nil {
			editor.DispatchError(ErrorIdFor(err), err)
		}
		return nil // Error handled by DispatchError

	case KeySpace:
		m.setBuffer(editor, m.commandBuffer+" ")
		return nil

	default:
		if key.Rune != 0 {
			m.setBuffer(editor, m.commandBuffer+string(key.Rune))
			return nil
		}
		// Ignore unknown special keys
		return nil
	}
}
