package http

import (
	"context"
	"net/http"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// (the "Bearer " scheme prefix is optional, a bare token is accepted),
// validates it via [service.AuthService.ParseToken], and — on success —
// stores the verified claims in the request context under
// [utils.AuthClaimsCtxKey] before delegating to the next handler.
//
// A request without an "Authorization" header is rejected with HTTP 401
// "Access denied". A request whose token is malformed, tampered with, or
// expired is rejected with HTTP 400 "Invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, "Access denied", http.StatusUnauthorized)
			return
		}

		// ParseBearerToken fails only when the header carries no token
		// value at all (whitespace, or the bare scheme prefix).
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrEmptyToken).Send()
			utils.WriteMessage(w, "Invalid token", http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, "Invalid token", http.StatusBadRequest)
			return
		}

		// Store the verified claims in the context so that downstream
		// handlers can retrieve them without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AuthClaimsCtxKey, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
