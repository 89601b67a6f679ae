package books

import (
	"context"
	"sort"
	"sync"

	"github.com/mrlokans/lifebook/internal/entities"
)

// MemoryRepository keeps books in process memory. Ids start at 1 and are
// never reused.
type MemoryRepository struct {
	mu     sync.RWMutex
	books  map[uint]entities.Book
	nextID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books:  make(map[uint]entities.Book),
		nextID: 1,
	}
}

func (r *MemoryRepository) FindByID(_ context.Context, id uint) (*entities.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	book = clone(book)
	return &book, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]entities.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]entities.Book, 0, len(r.books))
	for _, book := range r.books {
		books = append(books, clone(book))
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (r *MemoryRepository) Save(_ context.Context, book entities.Book) (entities.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !book.IsPersisted() {
		book.ID = r.nextID
		r.nextID++
	} else if _, ok := r.books[book.ID]; !ok {
		return entities.Book{}, entities.InvalidStateError("Book with id %d no longer exists", book.ID)
	}

	stored := clone(book)
	r.books[book.ID] = stored
	return clone(stored), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return entities.NotFoundError("Book with id %d not found", id)
	}
	delete(r.books, id)
	return nil
}

// clone copies the optional fields so callers cannot mutate stored books.
func clone(book entities.Book) entities.Book {
	out := book
	if book.Author != nil {
		author := *book.Author
		out.Author = &author
	}
	if book.Description != nil {
		description := *book.Description
		out.Description = &description
	}
	if book.PublishedYear != nil {
		year := *book.PublishedYear
		out.PublishedYear = &year
	}
	return out
}
