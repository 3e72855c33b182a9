// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with a Wrap() method to wrap errors without resorting
// to fmt.Errorf("%w", err).
//
// Errors built by this package compare by message, so sentinels declared
// at package level may be wrapped with extra context and still be
// recognized by Is().
package errors

import (
	stderr "errors"
	"fmt"

	"go.uber.org/zap"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
//
// The main difference with github.com/pkg/errors is that we are wrapping
// errors from errors, not from text.
type Error struct {
	msg string
	err error
}

// Error message, including the wrapped context when there is one
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a new error wrapping a nested error. The receiver is not
// modified, so shared sentinels may be wrapped concurrently.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg: e.msg,
		err: err,
	}
}

// WrapMessage wraps an error built from a format string
func (e *Error) WrapMessage(format string, args ...interface{}) *Error {
	return &Error{
		msg: e.msg,
		err: fmt.Errorf(format, args...),
	}
}

// WrapWithLog wraps a nested error and logs the wrapped message at the same time
func (e *Error) WrapWithLog(logger *zap.Logger, err error, fields ...zap.Field) *Error {
	logger.Error(e.msg, append(fields, zap.Error(err))...)
	return e.Wrap(err)
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.msg == t.msg
	}
	return e.err == target
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.As)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
