package osfile

import (
	"errors"
	"fmt"
)

// Code classifies an Error.
type Code string

const (
	// CodeNotFound is returned by Open for any path that could not be
	// opened for reading.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidRange marks a caller-supplied buffer window or seek origin
	// that is out of bounds. The native resource is not touched.
	CodeInvalidRange Code = "INVALID_RANGE"

	// CodeClosed marks an operation on a File that was already closed.
	CodeClosed Code = "CLOSED"

	// CodeIO wraps a failure reported by the native file layer.
	CodeIO Code = "IO_ERROR"
)

// Sentinels for errors.Is. Each matches any *Error carrying the same Code.
var (
	ErrNotFound     = &Error{Code: CodeNotFound}
	ErrInvalidRange = &Error{Code: CodeInvalidRange}
	ErrClosed       = &Error{Code: CodeClosed}
	ErrIO           = &Error{Code: CodeIO}
)

// Error is returned by every File operation that fails.
type Error struct {
	Code Code
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := "osfile: "
	if e.Op != "" {
		msg += e.Op + " "
	}
	if e.Path != "" {
		msg += fmt.Sprintf("%q: ", e.Path)
	}
	msg += string(e.Code)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the Code of the first *Error in err's chain, or "" if
// there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func newError(code Code, op, path string, err error) *Error {
	return &Error{Code: code, Op: op, Path: path, Err: err}
}
