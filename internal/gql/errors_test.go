package gql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/lifebook/internal/entities"
	"github.com/mrlokans/lifebook/internal/services"
)

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "domain validation",
			err:         entities.ValidationError("Title cannot be empty"),
			wantCode:    CodeValidation,
			wantMessage: "Title cannot be empty",
		},
		{
			name:        "domain not found",
			err:         entities.NotFoundError("Book with id 3 not found"),
			wantCode:    CodeNotFound,
			wantMessage: "Book with id 3 not found",
		},
		{
			name:        "invalid state",
			err:         entities.InvalidStateError("Book with id 3 no longer exists"),
			wantCode:    CodeInvalidState,
			wantMessage: "Book with id 3 no longer exists",
		},
		{
			name:        "io hides the cause",
			err:         entities.IOError("Failed to read settings file", errors.New("EACCES /secret/path")),
			wantCode:    CodeIO,
			wantMessage: "Failed to read settings file",
		},
		{
			name:        "serialization",
			err:         entities.SerializationError("Failed to parse settings file", errors.New("unexpected EOF")),
			wantCode:    CodeParse,
			wantMessage: "Failed to parse settings file",
		},
		{
			name:        "storage hides the cause",
			err:         entities.StorageError("failed to create book", errors.New("database is locked")),
			wantCode:    CodeRepository,
			wantMessage: "failed to create book",
		},
		{
			name:        "application invalid language",
			err:         &services.Error{Kind: services.KindInvalidLanguage, Message: "Invalid language: 'fr'"},
			wantCode:    CodeInvalidLanguage,
			wantMessage: "Invalid language: 'fr'",
		},
		{
			name:        "application invalid theme",
			err:         &services.Error{Kind: services.KindInvalidTheme, Message: "Invalid theme"},
			wantCode:    CodeInvalidTheme,
			wantMessage: "Invalid theme",
		},
		{
			name:        "application invalid directory",
			err:         &services.Error{Kind: services.KindInvalidDatabaseDirectory, Message: "Database directory cannot be empty"},
			wantCode:    CodeInvalidDatabaseDirectory,
			wantMessage: "Database directory cannot be empty",
		},
		{
			name:        "application not found",
			err:         &services.Error{Kind: services.KindNotFound, Message: "Book with id 9 not found"},
			wantCode:    CodeNotFound,
			wantMessage: "Book with id 9 not found",
		},
		{
			name:        "wrapped domain error",
			err:         fmt.Errorf("resolver: %w", entities.ValidationError("bad year")),
			wantCode:    CodeValidation,
			wantMessage: "bad year",
		},
		{
			name:        "unclassified",
			err:         errors.New("boom at 0xdeadbeef"),
			wantCode:    CodeDomain,
			wantMessage: unexpectedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ToAPIError(tt.err)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, map[string]interface{}{"code": tt.wantCode}, apiErr.Extensions())
		})
	}
}

func TestToAPIError_PassesThroughAPIErrors(t *testing.T) {
	original := &Error{Code: CodeParse, Message: "bad body"}
	assert.Same(t, original, ToAPIError(original))
}
