package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mfadhilr/contekan/internal/app"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/service"
	"github.com/mfadhilr/contekan/internal/store"
	"github.com/mfadhilr/contekan/internal/utils"
	"github.com/mfadhilr/contekan/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, app.MsgEmailAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.writeSessionWithToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeSessionWithToken(w, r, foundUser)
}

// session returns the identity bound to the presented token. The client
// uses it on startup to restore who is signed in.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Int64("user_id", userID).Msg("token holder no longer exists")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		log.Err(err).Int64("user_id", userID).Msg("unexpected error during session lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Session{
		UserID:      foundUser.UserID,
		Email:       foundUser.Email,
		DisplayName: foundUser.DisplayName(),
	}, http.StatusOK)
}

// writeSessionWithToken issues a token for user, sets it on the
// Authorization response header and writes the session payload.
func (h *Handler) writeSessionWithToken(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.Session{
		UserID:      user.UserID,
		Email:       user.Email,
		DisplayName: user.DisplayName(),
	}, http.StatusOK)
}
