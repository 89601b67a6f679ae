package services

import "github.com/mrlokans/lifebook/internal/entities"

// BookDTO is the API projection of a persisted book.
type BookDTO struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Author        *string `json:"author"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"publishedYear"`
}

type GeneralSettingsDTO struct {
	Language    string `json:"language"`
	DisplayName string `json:"displayName"`
}

type AppearanceSettingsDTO struct {
	Theme string `json:"theme"`
}

type DatabaseSettingsDTO struct {
	DatabaseDirectory string `json:"databaseDirectory"`
}

// CreateBookInput carries the fields of a new book.
type CreateBookInput struct {
	Title         string
	Author        *string
	Description   *string
	PublishedYear *int
}

// UpdateBookInput carries a partial update. Nil fields are left unchanged; an
// empty Author or Description clears the field.
type UpdateBookInput struct {
	Title         *string
	Author        *string
	Description   *string
	PublishedYear *int
}

func toBookDTO(book entities.Book) BookDTO {
	return BookDTO{
		ID:            int(book.ID),
		Title:         book.Title,
		Author:        book.Author,
		Description:   book.Description,
		PublishedYear: book.PublishedYear,
	}
}

func toGeneralDTO(settings entities.GeneralSettings) GeneralSettingsDTO {
	return GeneralSettingsDTO{
		Language:    settings.Language.String(),
		DisplayName: settings.Language.DisplayName(),
	}
}

func toAppearanceDTO(settings entities.AppearanceSettings) AppearanceSettingsDTO {
	return AppearanceSettingsDTO{Theme: settings.Theme.String()}
}

func toDatabaseDTO(settings entities.DatabaseSettings) DatabaseSettingsDTO {
	return DatabaseSettingsDTO{DatabaseDirectory: settings.DatabaseDirectory}
}
