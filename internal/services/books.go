package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/entities"
)

// BookService handles book use cases: validation through the entity, then
// persistence through the repository, then projection to BookDTO.
type BookService struct {
	repo BookRepository
	log  *zap.Logger
}

// NewBookService creates a new BookService.
func NewBookService(repo BookRepository, log *zap.Logger) *BookService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookService{
		repo: repo,
		log:  log.With(zap.String("component", "books")),
	}
}

func (s *BookService) CreateBook(ctx context.Context, input CreateBookInput) (BookDTO, error) {
	book, err := entities.NewBook(input.Title, input.Author, input.Description, input.PublishedYear)
	if err != nil {
		return BookDTO{}, fromDomain(err)
	}

	saved, err := s.repo.Save(ctx, book)
	if err != nil {
		return BookDTO{}, fromDomain(err)
	}

	s.log.Info("book created", zap.Uint("id", saved.ID))
	return toBookDTO(saved), nil
}

func (s *BookService) GetAllBooks(ctx context.Context) ([]BookDTO, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fromDomain(err)
	}

	dtos := make([]BookDTO, 0, len(books))
	for _, book := range books {
		dtos = append(dtos, toBookDTO(book))
	}
	return dtos, nil
}

// GetBook returns nil without error when the book does not exist.
func (s *BookService) GetBook(ctx context.Context, id int) (*BookDTO, error) {
	if id <= 0 {
		return nil, nil
	}

	book, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		return nil, fromDomain(err)
	}
	if book == nil {
		return nil, nil
	}

	dto := toBookDTO(*book)
	return &dto, nil
}

func (s *BookService) UpdateBook(ctx context.Context, id int, input UpdateBookInput) (BookDTO, error) {
	existing, err := s.find(ctx, id)
	if err != nil {
		return BookDTO{}, err
	}

	updated, err := existing.Update(entities.BookUpdate{
		Title:         input.Title,
		Author:        input.Author,
		Description:   input.Description,
		PublishedYear: input.PublishedYear,
	})
	if err != nil {
		return BookDTO{}, fromDomain(err)
	}

	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		return BookDTO{}, fromDomain(err)
	}

	s.log.Info("book updated", zap.Uint("id", saved.ID))
	return toBookDTO(saved), nil
}

func (s *BookService) DeleteBook(ctx context.Context, id int) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, uint(id)); err != nil {
		return fromDomain(err)
	}

	s.log.Info("book deleted", zap.Int("id", id))
	return nil
}

func (s *BookService) find(ctx context.Context, id int) (*entities.Book, error) {
	if id <= 0 {
		return nil, notFound("Book with id %d not found", id)
	}
	book, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		return nil, fromDomain(err)
	}
	if book == nil {
		return nil, notFound("Book with id %d not found", id)
	}
	return book, nil
}
