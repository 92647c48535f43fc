// Package mdberr defines the error kinds surfaced by mdb operations.
//
// Every failure that reaches the CLI carries one of four kinds so callers can
// branch with errors.Is without parsing messages:
//
//	errors.Is(err, mdberr.ErrNotFound)
package mdberr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidInput
	KindIO
	KindExternalProcess
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidInput:
		return "invalid input"
	case KindIO:
		return "io error"
	case KindExternalProcess:
		return "external process error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrNotFound        = &Error{Kind: KindNotFound, Msg: KindNotFound.String()}
	ErrInvalidInput    = &Error{Kind: KindInvalidInput, Msg: KindInvalidInput.String()}
	ErrIO              = &Error{Kind: KindIO, Msg: KindIO.String()}
	ErrExternalProcess = &Error{Kind: KindExternalProcess, Msg: KindExternalProcess.String()}
)

// Error is a kinded error with an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NotFound returns a KindNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidInput returns a KindInvalidInput error with a formatted message.
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// IO wraps err as a KindIO error. It returns nil when err is nil.
func IO(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Msg: fmt.Sprintf(format, args...), Err: err}
}

// ExternalProcess wraps err as a KindExternalProcess error.
func ExternalProcess(err error, format string, args ...any) error {
	return &Error{Kind: KindExternalProcess, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
