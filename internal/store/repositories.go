package store

import (
	"github.com/bookvault/bookvault/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection, wired once at startup and injected into the service layer.
type Repositories struct {
	UserRepository UserRepository
	BookRepository BookRepository
}

// NewRepositories constructs all repositories over the given database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		BookRepository: NewBookRepository(db, logger),
	}
}
