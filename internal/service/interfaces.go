package service

import (
	"context"

	"github.com/bookvault/bookvault/models"
)

// AuthService covers the authentication contract of the API: credential
// handling, account creation, and bearer-token lifecycle.
type AuthService interface {
	// RegisterUser creates a local account from name, email, and plaintext
	// password. A duplicate email yields store.ErrEmailAlreadyExists.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates a local account by email and plaintext password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// FederatedLogin verifies a third-party identity token, creating the
	// local account on first sight of a verified email.
	FederatedLogin(ctx context.Context, idToken string) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw bearer token string and returns the
	// decoded token. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BookService orchestrates CRUD operations over the book resource.
type BookService interface {
	CreateBook(ctx context.Context, req models.BookRequest) (models.Book, error)
	GetAllBooks(ctx context.Context) ([]models.Book, error)
	FindBookByID(ctx context.Context, id int64) (models.Book, error)
	UpdateBook(ctx context.Context, id int64, req models.BookRequest) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// FederatedVerifier validates a third-party identity token and extracts its
// verified claims. Implemented by the Google adapter.
type FederatedVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (models.FederatedClaims, error)
}
