// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the contekan server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// core from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mfadhilr/contekan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the contekan
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the session identity.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates with the server. On success it stores the
	// returned bearer token via SetToken and returns the session identity.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Session returns the identity bound to the stored token. Returns
	// [ErrUnauthorized] (wrapped) when no valid token is held.
	Session(ctx context.Context) (models.Session, error)

	// GetAllSnippets fetches every snippet visible to the authenticated
	// user, ordered by creation time ascending.
	GetAllSnippets(ctx context.Context) ([]models.Snippet, error)

	// CreateSnippet persists a new snippet and returns the server-assigned
	// record. Returns [ErrPayloadTooLarge] (wrapped) when the attachment
	// exceeds the server limit.
	CreateSnippet(ctx context.Context, req models.InsertSnippetRequest) (models.Snippet, error)

	// UpdateSnippet applies the mutable fields to the snippet with the
	// given id. Returns [ErrForbidden] (wrapped) when the snippet belongs
	// to another user and [ErrNotFound] (wrapped) when it does not exist.
	UpdateSnippet(ctx context.Context, id string, req models.UpdateSnippetRequest) (models.Snippet, error)

	// DeleteSnippet removes the snippet with the given id. Error contract
	// matches UpdateSnippet.
	DeleteSnippet(ctx context.Context, id string) error
}
