package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/go-chi/chi/v5"

	"github.com/mfadhilr/contekan/internal/mock"
	"github.com/mfadhilr/contekan/internal/service"
	"github.com/mfadhilr/contekan/internal/store"
	"github.com/mfadhilr/contekan/models"
)

// authedRouter wires the router with a ParseToken expectation so requests
// carrying "Bearer valid-token" resolve to the given user id.
func authedRouter(mockAuth *mock.MockAuthService, router *chi.Mux, userID int64) *chi.Mux {
	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: userID}, nil).
		AnyTimes()
	return router
}

func authedRequest(method, target string, body *bytes.Reader) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func TestListSnippets_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	expected := []models.Snippet{
		{ID: "id-1", Title: "quicksort", OwnerID: 1},
		{ID: "id-2", Title: "binsearch", OwnerID: 2},
	}
	mockSnippets.EXPECT().GetAllSnippets(gomock.Any()).Return(expected, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/contekan/", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.Snippet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "id-1", got[0].ID)
}

func TestListSnippets_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().ParseToken(gomock.Any(), "bad-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/contekan/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateSnippet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	payload := models.InsertSnippetRequest{Title: "quicksort", Body: "func qs() {}"}
	created := models.Snippet{ID: "id-1", Title: payload.Title, Body: payload.Body, OwnerID: 1}

	mockSnippets.EXPECT().CreateSnippet(gomock.Any(), int64(1), payload).Return(created, nil)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/contekan/", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Snippet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "id-1", got.ID)
}

func TestCreateSnippet_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	mockSnippets.EXPECT().CreateSnippet(gomock.Any(), int64(1), gomock.Any()).
		Return(models.Snippet{}, service.ErrInvalidDataProvided)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/contekan/",
		bytes.NewReader([]byte(`{"title":"","body":""}`))))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateSnippet_AttachmentTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	mockSnippets.EXPECT().CreateSnippet(gomock.Any(), int64(1), gomock.Any()).
		Return(models.Snippet{}, service.ErrAttachmentTooLarge)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/contekan/",
		bytes.NewReader([]byte(`{"title":"t","body":"b"}`))))

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestUpdateSnippet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	payload := models.UpdateSnippetRequest{Title: "renamed", Body: "new body"}
	updated := models.Snippet{ID: "id-1", Title: "renamed", Body: "new body", OwnerID: 1}

	mockSnippets.EXPECT().UpdateSnippet(gomock.Any(), "id-1", int64(1), payload).Return(updated, nil)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/contekan/id-1", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Snippet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "renamed", got.Title)
}

func TestUpdateSnippet_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 3)

	mockSnippets.EXPECT().UpdateSnippet(gomock.Any(), "id-1", int64(3), gomock.Any()).
		Return(models.Snippet{}, store.ErrNotSnippetOwner)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/contekan/id-1",
		bytes.NewReader([]byte(`{"title":"t","body":"b"}`))))

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateSnippet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	mockSnippets.EXPECT().UpdateSnippet(gomock.Any(), "missing", int64(1), gomock.Any()).
		Return(models.Snippet{}, store.ErrSnippetNotFound)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/contekan/missing",
		bytes.NewReader([]byte(`{"title":"t","body":"b"}`))))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteSnippet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 1)

	mockSnippets.EXPECT().DeleteSnippet(gomock.Any(), "id-1", int64(1)).Return(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodDelete, "/api/contekan/id-1", nil))

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteSnippet_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSnippets := newTestHandler(t, ctrl)
	router := authedRouter(mockAuth, h.Init(), 3)

	mockSnippets.EXPECT().DeleteSnippet(gomock.Any(), "id-1", int64(3)).
		Return(store.ErrNotSnippetOwner)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodDelete, "/api/contekan/id-1", nil))

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/contekan/", nil)
	req.Header.Set("Authorization", "Bearer")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "Authorization"))
}
