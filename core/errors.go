/*
Package core holds the error conventions shared by all fontpack packages.

Every error produced by this module carries an ErrCode. A code classifies the
failure (missing resource, invalid input, capacity overflow, internal
failure); the message explains it to the user. Errors of a code match the
corresponding sentinel with errors.Is:

	if errors.Is(err, core.ErrMissing) { … }

Failures are fatal for the operation that returns them. Recoverable
conditions are not errors; they are traced and reported as warnings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package core

import (
	"errors"
	"fmt"
)

// ErrCode classifies application errors.
type ErrCode int

// Error codes
const (
	NOERROR   ErrCode = 0
	EMISSING  ErrCode = 122 // face, glyph, asset file or frame does not exist
	EINVALID  ErrCode = 123 // malformed input or violated precondition
	ECAPACITY ErrCode = 124 // value does not fit into its table field
	EINTERNAL ErrCode = 125 // rasterizer or I/O failure
)

func (c ErrCode) String() string {
	switch c {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case ECAPACITY:
		return "capacity exceeded"
	case EINTERNAL:
		return "internal error"
	}
	return fmt.Sprintf("error %d", int(c))
}

// sentinel matches every application error with the same code.
type sentinel ErrCode

func (s sentinel) Error() string {
	return ErrCode(s).String()
}

// Sentinels for errors.Is.
var (
	ErrMissing  error = sentinel(EMISSING)
	ErrInvalid  error = sentinel(EINVALID)
	ErrCapacity error = sentinel(ECAPACITY)
	ErrInternal error = sentinel(EINTERNAL)
)

// AppError is an error with a code and a message meant for users.
type AppError interface {
	error
	ErrorCode() ErrCode
	UserMessage() string
}

type appError struct {
	code  ErrCode
	msg   string
	cause error // may be nil
}

var _ AppError = (*appError)(nil)

func (e *appError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s [%s]", e.msg, e.code)
	}
	return fmt.Sprintf("%s [%s]: %v", e.msg, e.code, e.cause)
}

func (e *appError) Unwrap() error {
	return e.cause
}

func (e *appError) Is(target error) bool {
	s, ok := target.(sentinel)
	return ok && ErrCode(s) == e.code
}

func (e *appError) ErrorCode() ErrCode {
	return e.code
}

func (e *appError) UserMessage() string {
	return e.msg
}

// Error creates an application error.
func Error(code ErrCode, format string, v ...interface{}) error {
	return &appError{code: code, msg: fmt.Sprintf(format, v...)}
}

// WrapError creates an application error caused by err. The cause remains
// reachable with errors.Is and errors.As.
func WrapError(err error, code ErrCode, format string, v ...interface{}) error {
	return &appError{code: code, msg: fmt.Sprintf(format, v...), cause: err}
}

// Code returns the code of the outermost application error in err's chain.
// Errors of other origin are internal; a nil error is NOERROR.
func Code(err error) ErrCode {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the message of the outermost application error in
// err's chain, or the text of its code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return Code(err).String()
}
