package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/internal/validators"
	"github.com/MKhiriev/go-book-catalog/models"
)

// register handles POST /register.
//
// Field validation runs before any store access and reports every failed
// rule at once. On success the password is hashed by the auth service and a
// confirmation message is returned; neither the password nor its hash ever
// appears in the response.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if v := validators.ValidateRegistration(creds); !v.Valid() {
		log.Error().Any("errors", v.Errors()).Msg("registration validation failed")
		utils.WriteJSON(w, validators.ValidationErrorsResponse{Errors: v.Errors()}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("username", creds.Username).Msg("username already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgUsernameExists}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgServerError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserRegistered}, http.StatusCreated)
}

// login handles POST /login.
//
// An unknown username and a wrong password produce byte-identical 401
// responses so the endpoint cannot be used to probe which accounts exist.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if v := validators.ValidateLogin(creds); !v.Valid() {
		log.Error().Any("errors", v.Errors()).Msg("login validation failed")
		utils.WriteJSON(w, validators.ValidationErrorsResponse{Errors: v.Errors()}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", creds.Username).Msg("no user was found/wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidCreds}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgServerError}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
