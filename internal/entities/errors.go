package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidState  ErrorKind = "invalid_state"
	KindIO            ErrorKind = "io"
	KindSerialization ErrorKind = "serialization"
	KindStorage       ErrorKind = "storage"
)

// Error is the domain error type returned by entities and persistence gateways.
// Message is safe to show to clients; the wrapped cause is kept for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works
// regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors for use with errors.Is().
var (
	ErrValidation    = &Error{Kind: KindValidation, Message: "validation error"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalidState  = &Error{Kind: KindInvalidState, Message: "invalid state"}
	ErrIO            = &Error{Kind: KindIO, Message: "i/o error"}
	ErrSerialization = &Error{Kind: KindSerialization, Message: "serialization error"}
	ErrStorage       = &Error{Kind: KindStorage, Message: "storage error"}
)

func ValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidStateError(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func IOError(message string, cause error) *Error {
	return &Error{Kind: KindIO, Message: message, cause: cause}
}

func SerializationError(message string, cause error) *Error {
	return &Error{Kind: KindSerialization, Message: message, cause: cause}
}

func StorageError(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, cause: cause}
}
