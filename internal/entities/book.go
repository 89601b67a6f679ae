package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxTitleLength is counted in characters of the trimmed title.
	MaxTitleLength   = 200
	MinPublishedYear = 1000
)

var (
	validate = validator.New()

	// now is swapped in tests to pin the current year.
	now = time.Now
)

// Book is a library entry. ID is zero until the book is first persisted.
type Book struct {
	ID            uint
	Title         string
	Author        *string
	Description   *string
	PublishedYear *int
}

// BookUpdate carries a partial update. A nil field keeps the current value;
// an empty Author or Description clears the field.
type BookUpdate struct {
	Title         *string
	Author        *string
	Description   *string
	PublishedYear *int
}

// IsPersisted reports whether the book has been assigned an ID by a gateway.
func (b Book) IsPersisted() bool {
	return b.ID != 0
}

// MaxPublishedYear is the latest accepted publication year (next calendar year).
func MaxPublishedYear() int {
	return now().Year() + 1
}

// NewBook validates the fields and returns an unsaved book.
func NewBook(title string, author, description *string, publishedYear *int) (Book, error) {
	cleanTitle, err := validateTitle(title)
	if err != nil {
		return Book{}, err
	}

	if publishedYear != nil {
		if err := validatePublishedYear(*publishedYear); err != nil {
			return Book{}, err
		}
	}

	return Book{
		Title:         cleanTitle,
		Author:        normalizeOptional(author),
		Description:   normalizeOptional(description),
		PublishedYear: copyInt(publishedYear),
	}, nil
}

// Update returns a copy of b with the provided fields applied. Every provided
// field is validated before anything is applied, so a failed update leaves no
// partial result.
func (b Book) Update(u BookUpdate) (Book, error) {
	updated := b

	if u.Title != nil {
		cleanTitle, err := validateTitle(*u.Title)
		if err != nil {
			return b, err
		}
		updated.Title = cleanTitle
	}

	if u.PublishedYear != nil {
		if err := validatePublishedYear(*u.PublishedYear); err != nil {
			return b, err
		}
		updated.PublishedYear = copyInt(u.PublishedYear)
	}

	if u.Author != nil {
		updated.Author = normalizeOptional(u.Author)
	}
	if u.Description != nil {
		updated.Description = normalizeOptional(u.Description)
	}

	return updated, nil
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)

	err := validate.Var(trimmed, fmt.Sprintf("required,max=%d", MaxTitleLength))
	if err == nil {
		return trimmed, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "max" {
		return "", ValidationError("Title must be %d characters or less", MaxTitleLength)
	}
	return "", ValidationError("Title cannot be empty")
}

func validatePublishedYear(year int) error {
	maxYear := MaxPublishedYear()
	if err := validate.Var(year, fmt.Sprintf("min=%d,max=%d", MinPublishedYear, maxYear)); err != nil {
		return ValidationError("Published year must be between %d and %d", MinPublishedYear, maxYear)
	}
	return nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyInt(value *int) *int {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
