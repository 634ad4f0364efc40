package apperrors

import (
	"errors"
	"fmt"
)

// Kinds every handler knows how to turn into a status code
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
)

// Error carries a message meant for the person using the portal
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New creates an Error of the given kind
func New(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) error {
	return New(ErrValidation, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return New(ErrConflict, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return New(ErrNotFound, format, args...)
}

func Forbidden(format string, args ...interface{}) error {
	return New(ErrForbidden, format, args...)
}

// Message returns the user-facing message of err, or fallback when err
// carries none
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
