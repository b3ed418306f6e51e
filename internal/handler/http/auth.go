package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/service"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/utils"
	"github.com/bookvault/bookvault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "Invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteMessage(w, "Email already registered", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "Invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			utils.WriteMessage(w, "Email not registered", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrFederatedLoginRequired):
			log.Err(err).Msg("account requires federated login")
			utils.WriteMessage(w, "Please login with Google", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteMessage(w, "Invalid password", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) loginGoogle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.FederatedLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.FederatedLogin(ctx, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "Invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailNotVerified):
			log.Err(err).Msg("email not verified")
			utils.WriteMessage(w, "Email not verified", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidIdentityToken):
			log.Err(err).Msg("identity token rejected")
			utils.WriteMessage(w, "Invalid identity token", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during federated login")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{User: user, Token: token.SignedString}, http.StatusOK)
}
