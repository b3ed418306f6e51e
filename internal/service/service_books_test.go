package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.BookRepository
// ─────────────────────────────────────────────

type mockBookRepository struct {
	createBookFn   func(ctx context.Context, book models.Book) (models.Book, error)
	getAllBooksFn  func(ctx context.Context) ([]models.Book, error)
	findBookByIDFn func(ctx context.Context, id int64) (models.Book, error)
	updateBookFn   func(ctx context.Context, book models.Book) (models.Book, error)
	deleteBookFn   func(ctx context.Context, id int64) error
}

func (m *mockBookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	return m.createBookFn(ctx, book)
}

func (m *mockBookRepository) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	return m.getAllBooksFn(ctx)
}

func (m *mockBookRepository) FindBookByID(ctx context.Context, id int64) (models.Book, error) {
	return m.findBookByIDFn(ctx, id)
}

func (m *mockBookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	return m.updateBookFn(ctx, book)
}

func (m *mockBookRepository) DeleteBook(ctx context.Context, id int64) error {
	return m.deleteBookFn(ctx, id)
}

func newTestBookService(repo *mockBookRepository) BookService {
	return NewBookService(repo, logger.Nop())
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestBookService_CreateBook(t *testing.T) {
	repo := &mockBookRepository{
		createBookFn: func(_ context.Context, book models.Book) (models.Book, error) {
			assert.Equal(t, "The Go Programming Language", book.Title)
			assert.Equal(t, "Donovan & Kernighan", book.Author)
			book.ID = 1
			return book, nil
		},
	}
	svc := newTestBookService(repo)

	created, err := svc.CreateBook(context.Background(), models.BookRequest{
		Title:  "The Go Programming Language",
		Author: "Donovan & Kernighan",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestBookService_CreateBook_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &mockBookRepository{
		createBookFn: func(_ context.Context, _ models.Book) (models.Book, error) {
			return models.Book{}, storeErr
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.CreateBook(context.Background(), models.BookRequest{Title: "T", Author: "A"})
	assert.ErrorIs(t, err, storeErr)
}

func TestBookService_GetAllBooks(t *testing.T) {
	expected := []models.Book{
		{ID: 1, Title: "First", Author: "A"},
		{ID: 2, Title: "Second", Author: "B"},
	}
	repo := &mockBookRepository{
		getAllBooksFn: func(_ context.Context) ([]models.Book, error) {
			return expected, nil
		},
	}
	svc := newTestBookService(repo)

	books, err := svc.GetAllBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, books)
}

func TestBookService_FindBookByID_NotFound(t *testing.T) {
	repo := &mockBookRepository{
		findBookByIDFn: func(_ context.Context, _ int64) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.FindBookByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestBookService_UpdateBook(t *testing.T) {
	repo := &mockBookRepository{
		updateBookFn: func(_ context.Context, book models.Book) (models.Book, error) {
			assert.Equal(t, int64(9), book.ID)
			assert.Equal(t, "Renamed", book.Title)
			return book, nil
		},
	}
	svc := newTestBookService(repo)

	updated, err := svc.UpdateBook(context.Background(), 9, models.BookRequest{Title: "Renamed", Author: "A"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	repo := &mockBookRepository{
		updateBookFn: func(_ context.Context, _ models.Book) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.UpdateBook(context.Background(), 404, models.BookRequest{Title: "T", Author: "A"})
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestBookService_DeleteBook(t *testing.T) {
	var deletedID int64
	repo := &mockBookRepository{
		deleteBookFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	svc := newTestBookService(repo)

	require.NoError(t, svc.DeleteBook(context.Background(), 5))
	assert.Equal(t, int64(5), deletedID)
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	repo := &mockBookRepository{
		deleteBookFn: func(_ context.Context, _ int64) error {
			return store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	err := svc.DeleteBook(context.Background(), 5)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}
