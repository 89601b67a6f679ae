package gql

import (
	"errors"

	"github.com/mrlokans/lifebook/internal/entities"
	"github.com/mrlokans/lifebook/internal/services"
)

// Error codes delivered in errors[].extensions.code.
const (
	CodeNotFound                 = "NOT_FOUND"
	CodeValidation               = "VALIDATION_ERROR"
	CodeInvalidState             = "INVALID_STATE"
	CodeIO                       = "IO_ERROR"
	CodeInvalidLanguage          = "INVALID_LANGUAGE"
	CodeInvalidTheme             = "INVALID_THEME"
	CodeInvalidDatabaseDirectory = "INVALID_DATABASE_DIRECTORY"
	CodeDomain                   = "DOMAIN_ERROR"
	CodeParse                    = "PARSE_ERROR"
	CodeRepository               = "REPOSITORY_ERROR"
)

const unexpectedMessage = "An unexpected error occurred"

// Error is the client-facing error. It satisfies gqlerrors.ExtendedError so
// the code ends up in the response extensions.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// ToAPIError maps an application or domain error to a code and a message that
// never includes the wrapped low-level cause.
func ToAPIError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var appErr *services.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case services.KindNotFound:
			return &Error{Code: CodeNotFound, Message: appErr.Message}
		case services.KindInvalidLanguage:
			return &Error{Code: CodeInvalidLanguage, Message: appErr.Message}
		case services.KindInvalidTheme:
			return &Error{Code: CodeInvalidTheme, Message: appErr.Message}
		case services.KindInvalidDatabaseDirectory:
			return &Error{Code: CodeInvalidDatabaseDirectory, Message: appErr.Message}
		}
	}

	var domainErr *entities.Error
	if errors.As(err, &domainErr) {
		return &Error{Code: domainCode(domainErr.Kind), Message: domainErr.Message}
	}

	return &Error{Code: CodeDomain, Message: unexpectedMessage}
}

func domainCode(kind entities.ErrorKind) string {
	switch kind {
	case entities.KindValidation:
		return CodeValidation
	case entities.KindNotFound:
		return CodeNotFound
	case entities.KindInvalidState:
		return CodeInvalidState
	case entities.KindIO:
		return CodeIO
	case entities.KindSerialization:
		return CodeParse
	case entities.KindStorage:
		return CodeRepository
	}
	return CodeDomain
}

// isInternal reports whether the code stands for a failure the client cannot
// correct.
func isInternal(code string) bool {
	switch code {
	case CodeInvalidState, CodeIO, CodeParse, CodeRepository, CodeDomain:
		return true
	}
	return false
}
