package store

import (
	"context"

	"github.com/bookvault/bookvault/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the canonical persisted
	// record. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by exact email match.
	// An empty result yields [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BookRepository persists and queries book records.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetAllBooks(ctx context.Context) ([]models.Book, error)
	FindBookByID(ctx context.Context, id int64) (models.Book, error)

	// UpdateBook overwrites title and author of the identified record and
	// returns the updated row. A missing id yields [ErrBookNotFound].
	UpdateBook(ctx context.Context, book models.Book) (models.Book, error)

	// DeleteBook removes the identified record.
	// A missing id yields [ErrBookNotFound].
	DeleteBook(ctx context.Context, id int64) error
}
