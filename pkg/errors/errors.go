package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the kinds of failure a lookup can report
type ErrorType string

const (
	ErrorTypeEmptyInput    ErrorType = "empty_input"
	ErrorTypeInvalidFormat ErrorType = "invalid_format"
	ErrorTypeEmptyQuery    ErrorType = "empty_query"
	ErrorTypeRemoteFailure ErrorType = "remote_failure"
)

// Sentinels for use with errors.Is
var (
	ErrEmptyInput    = &Error{Type: ErrorTypeEmptyInput}
	ErrInvalidFormat = &Error{Type: ErrorTypeInvalidFormat}
	ErrEmptyQuery    = &Error{Type: ErrorTypeEmptyQuery}
	ErrRemoteFailure = &Error{Type: ErrorTypeRemoteFailure}
)

// Error represents a lookup error with type information
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Type)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// New creates an error of the given type
func New(errorType ErrorType, message string) *Error {
	return &Error{Type: errorType, Message: message}
}

// EmptyInput reports a missing value
func EmptyInput(message string) *Error {
	return New(ErrorTypeEmptyInput, message)
}

// InvalidFormat reports a value that failed syntactic validation
func InvalidFormat(message string) *Error {
	return New(ErrorTypeInvalidFormat, message)
}

// EmptyQuery reports an empty query or an empty segment within one
func EmptyQuery(message string) *Error {
	return New(ErrorTypeEmptyQuery, message)
}

// RemoteFailure wraps any error returned by the remote profile source.
// The message is taken verbatim from the cause.
func RemoteFailure(cause error) *Error {
	if cause == nil {
		return New(ErrorTypeRemoteFailure, "remote failure")
	}
	return &Error{
		Type:    ErrorTypeRemoteFailure,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// RemoteFailuref builds a remote failure from a format string
func RemoteFailuref(format string, args ...interface{}) *Error {
	return RemoteFailure(fmt.Errorf(format, args...))
}

// TypeOf returns the ErrorType carried by err, or "" when err is not an *Error
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ""
}

// IsValidation reports whether err was produced locally, without a remote call
func IsValidation(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeEmptyInput, ErrorTypeInvalidFormat, ErrorTypeEmptyQuery:
		return true
	default:
		return false
	}
}
