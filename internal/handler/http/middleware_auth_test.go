package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookvault/bookvault/internal/service"
	"github.com/bookvault/bookvault/internal/utils"
	"github.com/bookvault/bookvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listBooks wires a trivial BookService so the guarded route has something
// to answer with once the middleware admits the request.
func listBooks() *mockBookService {
	return &mockBookService{
		getAllBooksFn: func(_ context.Context) ([]models.Book, error) {
			return []models.Book{}, nil
		},
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, listBooks())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied", responseMessage(t, rec))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, auth, listBooks())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer tampered.token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid token", responseMessage(t, rec))
}

// TestAuthMiddleware_EmptyToken verifies that a header carrying only the
// scheme prefix (no token value) is rejected with 400 before any token
// parsing is attempted.
func TestAuthMiddleware_EmptyToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			t.Fatal("token must not be parsed when the header carries no token value")
			return models.Token{}, errors.New("unreachable")
		},
	}
	h := newTestHandler(t, auth, listBooks())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid token", responseMessage(t, rec))
}

func TestAuthMiddleware_ValidTokenAdmitsRequest(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.token", tokenString)
			return models.Token{
				UserID: 1,
				Claims: models.TokenClaims{Email: "alice@example.com", Name: "Alice"},
			}, nil
		},
	}
	h := newTestHandler(t, auth, listBooks())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer valid.token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestAuthMiddleware_BareToken verifies that a header without the "Bearer "
// scheme prefix is accepted as-is.
func TestAuthMiddleware_BareToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "bare.token", tokenString)
			return models.Token{UserID: 1}, nil
		},
	}
	h := newTestHandler(t, auth, listBooks())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "bare.token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestAuthMiddleware_ClaimsReachHandler verifies that the verified claims
// are stored in the request context for downstream handlers.
func TestAuthMiddleware_ClaimsReachHandler(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{
				UserID: 9,
				Claims: models.TokenClaims{Email: "alice@example.com", Name: "Alice"},
			}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	var gotClaims models.TokenClaims
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, found = utils.GetAuthClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer valid.token")
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.True(t, found)
	assert.Equal(t, "alice@example.com", gotClaims.Email)
	assert.Equal(t, "Alice", gotClaims.Name)
}

// TestOpenBookRoutes_SkipAuth verifies that only the listing route sits
// behind the token check.
func TestOpenBookRoutes_SkipAuth(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			t.Fatal("token must not be parsed on an open route")
			return models.Token{}, errors.New("unreachable")
		},
	}
	books := &mockBookService{
		findBookByIDFn: func(_ context.Context, id int64) (models.Book, error) {
			return models.Book{ID: id}, nil
		},
	}
	h := newTestHandler(t, auth, books)

	req := httptest.NewRequest(http.MethodGet, "/books/1", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
