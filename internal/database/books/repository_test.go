package books

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lifebook/internal/database"
	"github.com/mrlokans/lifebook/internal/entities"
)

type gateway interface {
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	FindAll(ctx context.Context) ([]entities.Book, error)
	Save(ctx context.Context, book entities.Book) (entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

// setupTestDB creates a fresh SQLite database in a per-test directory.
func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"), database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newBook(t *testing.T, title string) entities.Book {
	t.Helper()
	book, err := entities.NewBook(title, strPtr("Author of "+title), nil, intPtr(2001))
	require.NoError(t, err)
	return book
}

func TestRepository(t *testing.T) {
	runGatewayContract(t, func(t *testing.T) gateway {
		return NewRepository(setupTestDB(t).DB)
	})
}

func TestMemoryRepository(t *testing.T) {
	runGatewayContract(t, func(t *testing.T) gateway {
		return NewMemoryRepository()
	})
}

func runGatewayContract(t *testing.T, newGateway func(t *testing.T) gateway) {
	ctx := context.Background()

	t.Run("Save assigns an id on insert", func(t *testing.T) {
		repo := newGateway(t)

		saved, err := repo.Save(ctx, newBook(t, "First"))
		require.NoError(t, err)
		assert.True(t, saved.IsPersisted())

		second, err := repo.Save(ctx, newBook(t, "Second"))
		require.NoError(t, err)
		assert.NotEqual(t, saved.ID, second.ID)
	})

	t.Run("round trip preserves all fields", func(t *testing.T) {
		repo := newGateway(t)
		book, err := entities.NewBook("Round Trip", strPtr("Ann"), strPtr("About things"), intPtr(1999))
		require.NoError(t, err)

		saved, err := repo.Save(ctx, book)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Empty(t, cmp.Diff(saved, *found))

		book.ID = saved.ID
		assert.Empty(t, cmp.Diff(book, *found))
	})

	t.Run("round trip preserves absent optional fields", func(t *testing.T) {
		repo := newGateway(t)
		book, err := entities.NewBook("Bare", nil, nil, nil)
		require.NoError(t, err)

		saved, err := repo.Save(ctx, book)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Nil(t, found.Author)
		assert.Nil(t, found.Description)
		assert.Nil(t, found.PublishedYear)
	})

	t.Run("FindByID returns nil for unknown id", func(t *testing.T) {
		repo := newGateway(t)

		found, err := repo.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.FindByID(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("FindAll returns books in insertion order", func(t *testing.T) {
		repo := newGateway(t)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		for _, title := range []string{"A", "B", "C"} {
			_, err := repo.Save(ctx, newBook(t, title))
			require.NoError(t, err)
		}

		all, err = repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "A", all[0].Title)
		assert.Equal(t, "B", all[1].Title)
		assert.Equal(t, "C", all[2].Title)
	})

	t.Run("Save updates in place", func(t *testing.T) {
		repo := newGateway(t)
		saved, err := repo.Save(ctx, newBook(t, "Before"))
		require.NoError(t, err)

		updated, err := saved.Update(entities.BookUpdate{Title: strPtr("After"), Author: strPtr("")})
		require.NoError(t, err)
		_, err = repo.Save(ctx, updated)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "After", found.Title)
		assert.Nil(t, found.Author)
		assert.Equal(t, 2001, *found.PublishedYear)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Save of a vanished book is an invalid state", func(t *testing.T) {
		repo := newGateway(t)
		book := newBook(t, "Ghost")
		book.ID = 404

		_, err := repo.Save(ctx, book)
		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrInvalidState))
	})

	t.Run("Delete removes the book", func(t *testing.T) {
		repo := newGateway(t)
		saved, err := repo.Save(ctx, newBook(t, "Doomed"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, saved.ID))

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Delete of unknown id is not found", func(t *testing.T) {
		repo := newGateway(t)

		err := repo.Delete(ctx, 12345)
		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrNotFound))
		assert.Contains(t, err.Error(), "12345")
	})

	t.Run("returned books are independent copies", func(t *testing.T) {
		repo := newGateway(t)
		saved, err := repo.Save(ctx, newBook(t, "Original"))
		require.NoError(t, err)

		*saved.Author = "Mutated"

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Author of Original", *found.Author)
	})

	t.Run("concurrent inserts get distinct ids", func(t *testing.T) {
		repo := newGateway(t)

		const workers = 8
		book := newBook(t, "Parallel")
		ids := make(chan uint, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				saved, err := repo.Save(ctx, book)
				if assert.NoError(t, err) {
					ids <- saved.ID
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[uint]bool)
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)
	})
}

func TestRepository_StorageFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	require.NoError(t, db.Close())

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrStorage))

	_, err = repo.Save(context.Background(), newBook(t, "Closed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrStorage))
}
