package services

import (
	"context"

	"github.com/mrlokans/lifebook/internal/entities"
)

// BookRepository is the persistence gateway for books.
// FindByID returns nil without error when the id is unknown.
type BookRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	FindAll(ctx context.Context) ([]entities.Book, error)
	Save(ctx context.Context, book entities.Book) (entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

// SettingsRepository is the persistence gateway for the settings document.
// Load returns defaults when nothing has been persisted yet.
type SettingsRepository interface {
	Load(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, settings entities.Settings) error
	Delete(ctx context.Context) error
}
