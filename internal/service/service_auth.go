package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/utils"
	"github.com/bookvault/bookvault/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, federated
// logins, and the JWT token lifecycle using a UserRepository for
// persistence, bcrypt for password hashing, and a FederatedVerifier for
// third-party identity tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// verifier validates third-party identity tokens for federated logins.
	verifier FederatedVerifier

	// tokenSignKey is the symmetric secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and FederatedVerifier and populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, verifier FederatedVerifier, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		verifier:       verifier,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new local account.
//
// It validates that name, email, and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// Uniqueness of the email is enforced by the single INSERT, so concurrent
// registrations with the same email cannot both succeed.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Kind:         models.AccountLocal,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing local account.
//
// It validates that both email and password are non-empty, looks up the
// account by email, and compares the plaintext against the stored bcrypt
// hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrFederatedLoginRequired if the account has no local password.
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.IsFederated() {
		log.Error().Int64("id", foundUser.ID).Msg("password login attempted on federated account")
		return models.User{}, ErrFederatedLoginRequired
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// FederatedLogin authenticates a user via a third-party identity token.
//
// The token is validated by the configured FederatedVerifier. Claims whose
// email is not verified by the provider are rejected before any local
// account is looked up or created. On first sight of a verified email, a
// federated account (without a local password) is created.
//
// Returns the local user record or:
//   - ErrInvalidDataProvided if the token string is empty.
//   - ErrInvalidIdentityToken if the verifier rejects the token.
//   - ErrEmailNotVerified if the provider reports the email unverified.
//   - A wrapped storage error if the repository calls fail.
func (a *authService) FederatedLogin(ctx context.Context, idToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	if idToken == "" {
		log.Error().Msg("empty identity token provided")
		return models.User{}, ErrInvalidDataProvided
	}

	claims, err := a.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.Err(err).Msg("identity token verification failed")
		return models.User{}, ErrInvalidIdentityToken
	}

	if !claims.EmailVerified {
		log.Error().Str("email", claims.Email).Msg("identity provider reports unverified email")
		return models.User{}, ErrEmailNotVerified
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, claims.Email)
	if err == nil {
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", claims.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:  claims.Name,
		Email: claims.Email,
		Kind:  models.AccountFederated,
	})
	if err != nil {
		log.Err(err).Str("email", claims.Email).Msg("federated user creation ended with error")
		return models.User{}, fmt.Errorf("federated user creation ended with error: %w", err)
	}

	log.Info().Int64("id", createdUser.ID).Msg("federated account created on first sight")

	return createdUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
