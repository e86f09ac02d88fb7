package core

type Signal any

type YankSignal struct {
	content string
}

func (y YankSignal) Value() string {
	return y.content
}

type PasteSignal struct {
	totalChars int
}

func (p PasteSignal) Value() int {
	return p.totalChars
}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

// ResultSignal carries the multi-line output of an analysis command.
type ResultSignal struct {
	command string
	lines   []string
}

func (r ResultSignal) Value() (command string, lines []string) {
	return r.command, r.lines
}

type SaveSignal struct {
	path  string
	lines int
}

func (s SaveSignal) Value() (path string, lines int) {
	return s.path, s.lines
}

type OpenSignal struct {
	path string
}

func (o OpenSignal) Value() string {
	return o.path
}

type QuitSignal struct{}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

type EnterCommandModeSignal struct{}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
