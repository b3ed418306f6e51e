package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new book record and returns it with server-assigned
// fields (ID, CreatedAt).
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBook, book.Title, book.Author)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.CreatedAt); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error creating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return book, nil
}

// GetAllBooks returns every book record ordered by id.
func (r *bookRepository) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "title", "author", "created_at").
		From(models.Book{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.CreatedAt); err != nil {
			log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// FindBookByID retrieves a single book record.
// A missing id yields [ErrBookNotFound].
func (r *bookRepository) FindBookByID(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, findBookByID, id)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.CreatedAt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Book{}, ErrBookNotFound
		default:
			log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error finding book")
			return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return book, nil
}

// UpdateBook overwrites title and author of the identified record and
// returns the updated row. A missing id yields [ErrBookNotFound].
func (r *bookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Update(models.Book{}.TableName()).
		Set("title", book.Title).
		Set("author", book.Author).
		Where(sq.Eq{"id": book.ID}).
		Suffix("RETURNING id, title, author, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error building query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Book
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Author, &updated.CreatedAt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Book{}, ErrBookNotFound
		default:
			log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error updating book")
			return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return updated, nil
}

// DeleteBook removes the identified record.
// A missing id yields [ErrBookNotFound].
func (r *bookRepository) DeleteBook(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBook, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
