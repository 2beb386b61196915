package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfadhilr/contekan/internal/validators"
	"github.com/mfadhilr/contekan/models"
)

// SnippetValidationService decorates a SnippetService with payload
// validation. Reads and deletes pass through untouched; create and update
// payloads are checked before they reach persistence.
type SnippetValidationService struct {
	inner     SnippetService
	validator validators.Validator
}

func NewSnippetValidationService() SnippetServiceWrapper {
	return &SnippetValidationService{
		validator: validators.NewSnippetValidator(),
	}
}

func (v *SnippetValidationService) GetAllSnippets(ctx context.Context) ([]models.Snippet, error) {
	return v.inner.GetAllSnippets(ctx)
}

func (v *SnippetValidationService) GetSnippet(ctx context.Context, id string) (models.Snippet, error) {
	return v.inner.GetSnippet(ctx, id)
}

func (v *SnippetValidationService) CreateSnippet(ctx context.Context, ownerID int64, req models.InsertSnippetRequest) (models.Snippet, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Snippet{}, v.classify(err)
	}

	return v.inner.CreateSnippet(ctx, ownerID, req)
}

func (v *SnippetValidationService) UpdateSnippet(ctx context.Context, id string, ownerID int64, req models.UpdateSnippetRequest) (models.Snippet, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Snippet{}, v.classify(err)
	}

	return v.inner.UpdateSnippet(ctx, id, ownerID, req)
}

func (v *SnippetValidationService) DeleteSnippet(ctx context.Context, id string, ownerID int64) error {
	return v.inner.DeleteSnippet(ctx, id, ownerID)
}

func (v *SnippetValidationService) Wrap(wrapped SnippetService) SnippetService {
	v.inner = wrapped
	return v
}

// classify keeps the size violation distinct and folds every other
// validation failure into ErrInvalidDataProvided.
func (v *SnippetValidationService) classify(err error) error {
	if errors.Is(err, validators.ErrAttachmentTooLarge) {
		return fmt.Errorf("%w: %w", ErrAttachmentTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
