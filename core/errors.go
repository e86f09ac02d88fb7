package core

import (
	"errors"
	"log"
)

var (
	ErrOutOfRange      = errors.New("out of range")
	ErrIO              = errors.New("io error")
	ErrNoData          = errors.New("no data")
	ErrEndOfBuffer     = errors.New("end of buffer")
	ErrStartOfBuffer   = errors.New("start of buffer")
	ErrEndOfLine       = errors.New("end of line")
	ErrStartOfLine     = errors.New("start of line")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidCommand  = errors.New("invalid command")
	ErrMissingArgument = errors.New("missing argument")
	ErrUnsupportedChar = errors.New("unsupported character")
	ErrNoChangesToSave = errors.New("no changes to save")
	ErrUnsavedChanges  = errors.New("unsaved changes (use q! to override)")
	ErrNoFileName      = errors.New("no file name")
	ErrClipboard       = errors.New("clipboard unavailable")
)

type ErrorId int

const (
	ErrOutOfRangeId ErrorId = iota
	ErrIOId
	ErrNoDataId
	ErrEndOfBufferId
	ErrStartOfBufferId
	ErrEndOfLineId
	ErrStartOfLineId
	ErrInvalidModeId
	ErrInvalidCommandId
	ErrUnsupportedCharId
	ErrFailedToSaveId
	ErrFailedToOpenId
	ErrCopyFailedId
	ErrPasteFailedId
)

// Error pairs an error with the category it is dispatched under.
type Error struct {
	id  ErrorId
	err error
}

func newError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Id() ErrorId { return e.id }

// ErrorIdFor picks the dispatch category for an arbitrary error.
func ErrorIdFor(err error) ErrorId {
	var e *Error
	switch {
	case errors.As(err, &e):
		return e.id
	case errors.Is(err, ErrIO):
		return ErrIOId
	case errors.Is(err, ErrNoData):
		return ErrNoDataId
	case errors.Is(err, ErrOutOfRange):
		return ErrOutOfRangeId
	case errors.Is(err, ErrUnsupportedChar):
		return ErrUnsupportedCharId
	default:
		return ErrInvalidCommandId
	}
}

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
