package services

import (
	"errors"
	"fmt"

	"github.com/mrlokans/lifebook/internal/entities"
)

// ErrorKind classifies an application failure.
type ErrorKind string

const (
	KindNotFound                 ErrorKind = "not_found"
	KindInvalidLanguage          ErrorKind = "invalid_language"
	KindInvalidTheme             ErrorKind = "invalid_theme"
	KindInvalidDatabaseDirectory ErrorKind = "invalid_database_directory"
	// KindDomain wraps an *entities.Error that crossed into the service layer.
	KindDomain ErrorKind = "domain"
)

// Error is returned by every service operation.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil && e.Kind != KindDomain {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound                 = &Error{Kind: KindNotFound}
	ErrInvalidLanguage          = &Error{Kind: KindInvalidLanguage}
	ErrInvalidTheme             = &Error{Kind: KindInvalidTheme}
	ErrInvalidDatabaseDirectory = &Error{Kind: KindInvalidDatabaseDirectory}
	ErrDomain                   = &Error{Kind: KindDomain}
)

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// fromDomain converts err into an application error. Application errors pass
// through unchanged; domain errors keep their message and stay reachable with
// errors.As.
func fromDomain(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	var domainErr *entities.Error
	if errors.As(err, &domainErr) {
		return &Error{Kind: KindDomain, Message: domainErr.Message, cause: err}
	}
	return &Error{Kind: KindDomain, Message: "unexpected error", cause: err}
}

// withKind re-labels a validation failure from a value parser.
func withKind(kind ErrorKind, err error) *Error {
	var domainErr *entities.Error
	if errors.As(err, &domainErr) {
		return &Error{Kind: kind, Message: domainErr.Message}
	}
	return &Error{Kind: kind, Message: err.Error()}
}
