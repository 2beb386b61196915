package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/utils"
	"github.com/mfadhilr/contekan/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromAuthResponse(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromAuthResponse(resp)
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session response: %w", err)
	}

	return session, nil
}

func (h *httpServerAdapter) GetAllSnippets(ctx context.Context) ([]models.Snippet, error) {
	resp, err := h.authedRequest(ctx).Get("/api/contekan/")
	if err != nil {
		return nil, fmt.Errorf("list snippets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var snippets []models.Snippet
	if err = json.Unmarshal(resp.Body(), &snippets); err != nil {
		return nil, fmt.Errorf("decode snippets response: %w", err)
	}

	return snippets, nil
}

func (h *httpServerAdapter) CreateSnippet(ctx context.Context, req models.InsertSnippetRequest) (models.Snippet, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/contekan/")
	if err != nil {
		return models.Snippet{}, fmt.Errorf("create snippet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Snippet{}, err
	}

	var created models.Snippet
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Snippet{}, fmt.Errorf("decode create snippet response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateSnippet(ctx context.Context, id string, req models.UpdateSnippetRequest) (models.Snippet, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/contekan/" + url.PathEscape(id))
	if err != nil {
		return models.Snippet{}, fmt.Errorf("update snippet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Snippet{}, err
	}

	var updated models.Snippet
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Snippet{}, fmt.Errorf("decode update snippet response: %w", err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteSnippet(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/contekan/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete snippet request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// sessionFromAuthResponse extracts the bearer token from the Authorization
// response header, stores it, and decodes the session payload.
func (h *httpServerAdapter) sessionFromAuthResponse(resp *resty.Response) (models.Session, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("parse bearer token: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode auth response: %w", err)
	}
	if session.UserID == 0 {
		userID, idErr := utils.ParseUserIDFromJWT(token)
		if idErr != nil {
			return models.Session{}, fmt.Errorf("parse user id: %w", idErr)
		}
		session.UserID = userID
	}

	h.SetToken(token)
	return session, nil
}
