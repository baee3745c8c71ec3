// Package domainerrors provides coded errors for the shieldbox domain layer.
//
// Services attach a Code so callers can classify a failure without string
// matching. The public facades flatten these to the boolean contract and log
// the full error as the diagnostic side channel.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeValidation marks malformed input rejected before any remote call:
	// negative ids, negative quantities, negative order numbers.
	CodeValidation Code = "validation"

	// CodeNotFound marks a referenced order, item or food box that does not
	// exist in the relevant scope.
	CodeNotFound Code = "not_found"

	// CodePolicy marks a domain rule refusing an otherwise well-formed
	// request: throttle window not elapsed, quantity ceiling violated,
	// all items zeroed, status forbids the mutation, ownership mismatch.
	CodePolicy Code = "policy"

	// CodeRemote marks transport errors, malformed remote responses and
	// explicit remote rejections.
	CodeRemote Code = "remote"

	// CodeInternal marks bugs and unexpected states.
	CodeInternal Code = "internal"
)

// Error is a domain error carrying a classification code.
type Error struct {
	code  Code
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message. A nil err returns nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, msg: msg, cause: err}
}

// CodeOf reports the code of err, or CodeInternal if err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return CodeInternal
}

// HasCode reports whether err (or anything it wraps) carries code.
func HasCode(err error, code Code) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if de, ok := e.(*Error); ok && de.code == code {
			return true
		}
	}
	return false
}
