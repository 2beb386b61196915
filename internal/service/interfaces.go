package service

import (
	"context"

	"github.com/mfadhilr/contekan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// AuthService handles user registration, credential verification, and JWT
// token lifecycle on the server side.
type AuthService interface {
	// RegisterUser creates a new account from the registration payload.
	// The plain-text password is hashed before it reaches storage.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the authenticated account.
	// Returns ErrWrongPassword when the password does not match.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetUser returns the account for the given internal identifier.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SnippetService implements the snippet business rules on top of the
// repositories: reads return every snippet, mutations are restricted to the
// owner, and the owner display name is snapshotted at creation time.
type SnippetService interface {
	GetAllSnippets(ctx context.Context) ([]models.Snippet, error)
	GetSnippet(ctx context.Context, id string) (models.Snippet, error)
	CreateSnippet(ctx context.Context, ownerID int64, req models.InsertSnippetRequest) (models.Snippet, error)
	UpdateSnippet(ctx context.Context, id string, ownerID int64, req models.UpdateSnippetRequest) (models.Snippet, error)
	DeleteSnippet(ctx context.Context, id string, ownerID int64) error
}

// SnippetServiceWrapper defines middleware composition for SnippetService.
// Implementations wrap an existing SnippetService to add behavior such as
// validation.
type SnippetServiceWrapper interface {
	Wrap(SnippetService) SnippetService
}
