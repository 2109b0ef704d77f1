package apperrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure so the HTTP layer can map it to a status
// without inspecting error strings.
type Code string

const (
	CodeUnauthenticated Code = "unauthenticated"
	CodeForbidden       Code = "forbidden"
	CodeNotFound        Code = "not_found"
	CodeValidation      Code = "validation"
	CodeConflict        Code = "conflict"
	CodeInternal        Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, message, nil)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, message, nil)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message, nil)
}

func Validation(message string) *Error {
	return New(CodeValidation, message, nil)
}

func Conflict(message string) *Error {
	return New(CodeConflict, message, nil)
}

func Internal(message string, err error) *Error {
	return New(CodeInternal, message, err)
}

// Is reports whether err carries the given code. Untyped errors count
// as internal failures.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return code == CodeInternal
}

// Get extracts the typed error, wrapping untyped ones as internal so
// callers never leak raw persistence errors to a client.
func Get(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("internal server error", err)
}
