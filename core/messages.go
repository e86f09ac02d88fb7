package core

import "log"

var (
	EmptyMessage        = ""
	ChangesSavedMessage = "changes saved"
	FileOpenedMessage   = "file opened"
	FoundMessage        = "found"
	NotFoundMessage     = "not found"
	ReplacedMessage     = "replaced"
	MergedMessage       = "files merged"
	EncodedMessage      = "file encoded"
	DecodedMessage      = "file decoded"
	YankMessage         = "line yanked"
	ParagraphMessage    = "paragraph"
	CaseMessage         = "case converted"
	StatisticsMessage   = "statistics"
)

// DispatchMessage posts a message signal. The first argument is the message
// id, the optional second argument its text.
func (e *editor) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	e.state.Message = value
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
