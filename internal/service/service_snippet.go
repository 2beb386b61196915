package service

import (
	"context"
	"fmt"

	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/store"
	"github.com/mfadhilr/contekan/models"
)

type snippetService struct {
	snippetRepository store.SnippetRepository
	userRepository    store.UserRepository

	logger *logger.Logger
}

// NewSnippetService constructs the persistence-backed SnippetService.
// The user repository is consulted only to snapshot the owner display name
// when a create request does not carry one.
func NewSnippetService(snippetRepository store.SnippetRepository, userRepository store.UserRepository, logger *logger.Logger) SnippetService {
	return &snippetService{
		snippetRepository: snippetRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

func (s *snippetService) GetAllSnippets(ctx context.Context) ([]models.Snippet, error) {
	return s.snippetRepository.GetAllSnippets(ctx)
}

func (s *snippetService) GetSnippet(ctx context.Context, id string) (models.Snippet, error) {
	return s.snippetRepository.GetSnippet(ctx, id)
}

// CreateSnippet persists a new snippet owned by ownerID. The owner display
// name is taken from the request when provided and otherwise resolved from
// the owner's account at creation time; it is never updated afterwards.
func (s *snippetService) CreateSnippet(ctx context.Context, ownerID int64, req models.InsertSnippetRequest) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	displayName := req.OwnerDisplayName
	if displayName == "" {
		owner, err := s.userRepository.FindUserByID(ctx, ownerID)
		if err != nil {
			log.Err(err).Int64("owner_id", ownerID).Msg("owner lookup for display name failed")
			return models.Snippet{}, fmt.Errorf("owner lookup failed: %w", err)
		}
		displayName = owner.DisplayName()
	}

	return s.snippetRepository.SaveSnippet(ctx, models.Snippet{
		Title:            req.Title,
		Body:             req.Body,
		Description:      req.Description,
		Attachment:       req.Attachment,
		OwnerID:          ownerID,
		OwnerDisplayName: displayName,
	})
}

func (s *snippetService) UpdateSnippet(ctx context.Context, id string, ownerID int64, req models.UpdateSnippetRequest) (models.Snippet, error) {
	return s.snippetRepository.UpdateSnippet(ctx, id, ownerID, req)
}

func (s *snippetService) DeleteSnippet(ctx context.Context, id string, ownerID int64) error {
	return s.snippetRepository.DeleteSnippet(ctx, id, ownerID)
}
