// Package books provides persistence for the Book entity.
//
// Two gateways share one contract: Repository stores books in the SQLite
// "books" relation through gorm, MemoryRepository keeps them in a map for tests
// and demo mode.
//
// # Interface Implementation
//
//	var _ services.BookRepository = (*Repository)(nil)
//	var _ services.BookRepository = (*MemoryRepository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindByID(ctx, 123)
package books

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/lifebook/internal/database"
	"github.com/mrlokans/lifebook/internal/entities"
)

// Repository handles book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns nil without error when no book has the given id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	var record database.BookRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, entities.StorageError("failed to load book", err)
	}
	book := toEntity(record)
	return &book, nil
}

// FindAll returns every book ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	var records []database.BookRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, entities.StorageError("failed to list books", err)
	}

	books := make([]entities.Book, 0, len(records))
	for _, record := range records {
		books = append(books, toEntity(record))
	}
	return books, nil
}

// Save inserts a book without an id and updates a book that has one. The
// returned book carries the stored id.
func (r *Repository) Save(ctx context.Context, book entities.Book) (entities.Book, error) {
	record := toRecord(book)

	if !book.IsPersisted() {
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return entities.Book{}, entities.StorageError("failed to create book", err)
		}
		return toEntity(record), nil
	}

	// Select("*") writes nil columns too, so cleared fields become NULL.
	result := r.db.WithContext(ctx).
		Model(&database.BookRecord{}).
		Where("id = ?", record.ID).
		Select("*").
		Updates(&record)
	if result.Error != nil {
		return entities.Book{}, entities.StorageError("failed to update book", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Book{}, entities.InvalidStateError("Book with id %d no longer exists", book.ID)
	}
	return toEntity(record), nil
}

// Delete removes the book with the given id.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&database.BookRecord{})
	if result.Error != nil {
		return entities.StorageError("failed to delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.NotFoundError("Book with id %d not found", id)
	}
	return nil
}

func toRecord(book entities.Book) database.BookRecord {
	return database.BookRecord{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		Description:   book.Description,
		PublishedYear: book.PublishedYear,
	}
}

func toEntity(record database.BookRecord) entities.Book {
	return entities.Book{
		ID:            record.ID,
		Title:         record.Title,
		Author:        record.Author,
		Description:   record.Description,
		PublishedYear: record.PublishedYear,
	}
}
