package service

import (
	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/store"
)

// Services aggregates every application service, wired once at startup and
// injected into the transport layer.
type Services struct {
	AuthService AuthService
	BookService BookService
}

// NewServices constructs all services over the given repositories and
// federated identity verifier.
func NewServices(repositories *store.Repositories, verifier FederatedVerifier, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, verifier, cfg, logger),
		BookService: NewBookService(repositories.BookRepository, logger),
	}
}
