package service

import (
	"context"
	"fmt"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/models"
)

// bookService is the concrete implementation of BookService.
// The operations are direct pass-throughs to the BookRepository; the only
// invariant is "record exists or not found".
type bookService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (b *bookService) CreateBook(ctx context.Context, req models.BookRequest) (models.Book, error) {
	log := logger.FromContext(ctx)

	createdBook, err := b.bookRepository.CreateBook(ctx, models.Book{
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		log.Err(err).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

func (b *bookService) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	books, err := b.bookRepository.GetAllBooks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing books ended with error")
		return nil, fmt.Errorf("listing books ended with error: %w", err)
	}

	return books, nil
}

func (b *bookService) FindBookByID(ctx context.Context, id int64) (models.Book, error) {
	book, err := b.bookRepository.FindBookByID(ctx, id)
	if err != nil {
		return models.Book{}, fmt.Errorf("book search by id failed: %w", err)
	}

	return book, nil
}

// UpdateBook overwrites title and author of the identified record.
func (b *bookService) UpdateBook(ctx context.Context, id int64, req models.BookRequest) (models.Book, error) {
	updatedBook, err := b.bookRepository.UpdateBook(ctx, models.Book{
		ID:     id,
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("book update failed: %w", err)
	}

	return updatedBook, nil
}

func (b *bookService) DeleteBook(ctx context.Context, id int64) error {
	if err := b.bookRepository.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("book deletion failed: %w", err)
	}

	return nil
}
