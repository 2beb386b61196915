package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfadhilr/contekan/internal/app"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/service"
	"github.com/mfadhilr/contekan/internal/store"
	"github.com/mfadhilr/contekan/internal/utils"
	"github.com/mfadhilr/contekan/models"
)

func (h *Handler) listSnippets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snippets, err := h.services.SnippetService.GetAllSnippets(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSnippets").Msg("error loading snippets")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, snippets, http.StatusOK)
}

func (h *Handler) createSnippet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.createSnippet").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.InsertSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createSnippet").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.SnippetService.CreateSnippet(r.Context(), ownerID, req)
	if err != nil {
		h.writeSnippetError(w, r, err, "*Handler.createSnippet")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSnippet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.updateSnippet").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var req models.UpdateSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateSnippet").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.SnippetService.UpdateSnippet(r.Context(), id, ownerID, req)
	if err != nil {
		h.writeSnippetError(w, r, err, "*Handler.updateSnippet")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSnippet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.deleteSnippet").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.SnippetService.DeleteSnippet(r.Context(), id, ownerID); err != nil {
		h.writeSnippetError(w, r, err, "*Handler.deleteSnippet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeSnippetError maps service and storage errors onto HTTP statuses.
func (h *Handler) writeSnippetError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrAttachmentTooLarge):
		log.Err(err).Str("func", funcName).Msg("attachment too large")
		http.Error(w, app.MsgAttachmentTooLarge, http.StatusRequestEntityTooLarge)
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Str("func", funcName).Msg("invalid data provided")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	case errors.Is(err, store.ErrNotSnippetOwner):
		log.Err(err).Str("func", funcName).Msg("snippet belongs to another user")
		http.Error(w, app.MsgNotSnippetOwner, http.StatusForbidden)
	case errors.Is(err, store.ErrSnippetNotFound):
		log.Err(err).Str("func", funcName).Msg("snippet not found")
		http.Error(w, app.MsgSnippetNotFound, http.StatusNotFound)
	default:
		log.Err(err).Str("func", funcName).Msg("unexpected error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
