package store

import (
	"context"

	"github.com/mfadhilr/contekan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record with
	// its server-assigned UserID and CreatedAt. Returns
	// [ErrEmailAlreadyExists] (wrapped) when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Returns [ErrNoUserWasFound] when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its internal identifier.
	// Returns [ErrNoUserWasFound] when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SnippetRepository is the data-access contract for contekan records.
//
// Reads are not restricted by owner: every authenticated user sees all
// snippets. Mutations are keyed by id AND owner id, so a non-owner update
// or delete touches zero rows and is classified as [ErrNotSnippetOwner].
type SnippetRepository interface {
	// GetAllSnippets returns every snippet ordered by creation time
	// ascending (ties broken by id for determinism).
	GetAllSnippets(ctx context.Context) ([]models.Snippet, error)

	// GetSnippet returns the single snippet with the given id.
	// Returns [ErrSnippetNotFound] when no row matches.
	GetSnippet(ctx context.Context, id string) (models.Snippet, error)

	// SaveSnippet inserts a new snippet, assigning its ID and CreatedAt,
	// and returns the fully materialized record.
	SaveSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error)

	// UpdateSnippet applies the mutable fields to the snippet with the
	// given id, provided ownerID matches the stored owner. A nil
	// req.Attachment keeps the stored attachment. Returns the updated
	// record, [ErrSnippetNotFound], or [ErrNotSnippetOwner].
	UpdateSnippet(ctx context.Context, id string, ownerID int64, req models.UpdateSnippetRequest) (models.Snippet, error)

	// DeleteSnippet removes the snippet with the given id, provided
	// ownerID matches the stored owner. Returns [ErrSnippetNotFound] or
	// [ErrNotSnippetOwner].
	DeleteSnippet(ctx context.Context, id string, ownerID int64) error
}
