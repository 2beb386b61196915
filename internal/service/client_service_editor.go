// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/mfadhilr/contekan/internal/adapter"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/session"
	"github.com/mfadhilr/contekan/internal/validators"
	"github.com/mfadhilr/contekan/models"
)

type editorMode int

const (
	editorModeCreate editorMode = iota
	editorModeEdit
)

type snippetEditor struct {
	adapter  adapter.ServerAdapter
	sessions session.Provider
	logger   *logger.Logger

	mode        editorMode
	snippetID   string
	title       string
	body        string
	description string
	attachment  *models.Attachment
}

// NewSnippetEditor creates a SnippetEditor in add mode with empty staged
// fields.
func NewSnippetEditor(serverAdapter adapter.ServerAdapter, sessions session.Provider, logger *logger.Logger) SnippetEditor {
	return &snippetEditor{adapter: serverAdapter, sessions: sessions, logger: logger}
}

func (e *snippetEditor) StartCreate() {
	e.mode = editorModeCreate
	e.snippetID = ""
	e.title = ""
	e.body = ""
	e.description = ""
	e.attachment = nil
}

func (e *snippetEditor) StartEdit(snippet models.Snippet) error {
	current, ok := e.sessions.Current()
	if !ok {
		return fmt.Errorf("%w: %w", ErrAuthorization, ErrNoActiveSession)
	}
	if current.UserID != snippet.OwnerID {
		e.logger.Warn().Str("id", snippet.ID).Int64("user_id", current.UserID).Msg("edit refused for non-owner")
		return fmt.Errorf("%w: snippet %s belongs to another user", ErrAuthorization, snippet.ID)
	}

	e.mode = editorModeEdit
	e.snippetID = snippet.ID
	e.title = snippet.Title
	e.body = snippet.Body
	e.description = snippet.Description
	// stored attachment is kept unless a new one is staged
	e.attachment = nil
	return nil
}

func (e *snippetEditor) SetTitle(title string)             { e.title = title }
func (e *snippetEditor) SetBody(body string)               { e.body = body }
func (e *snippetEditor) SetDescription(description string) { e.description = description }

func (e *snippetEditor) Title() string       { return e.title }
func (e *snippetEditor) Body() string        { return e.body }
func (e *snippetEditor) Description() string { return e.description }

func (e *snippetEditor) AttachFile(fileName string, content []byte) error {
	if int64(len(content)) > models.MaxAttachmentSize {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrAttachmentTooLarge, fileName, len(content), models.MaxAttachmentSize)
	}

	e.attachment = &models.Attachment{
		FileName: fileName,
		Size:     int64(len(content)),
		Data:     base64.StdEncoding.EncodeToString(content),
	}
	return nil
}

func (e *snippetEditor) Attachment() *models.Attachment {
	return e.attachment
}

func (e *snippetEditor) Editing() (string, bool) {
	return e.snippetID, e.mode == editorModeEdit
}

func (e *snippetEditor) Submit(ctx context.Context) (models.Snippet, error) {
	if err := e.validate(); err != nil {
		return models.Snippet{}, err
	}

	if e.mode == editorModeEdit {
		return e.submitUpdate(ctx)
	}
	return e.submitInsert(ctx)
}

// validate checks the required staged fields locally. No server call is
// issued when something is missing.
func (e *snippetEditor) validate() error {
	var missing []string
	if strings.TrimSpace(e.title) == "" {
		missing = append(missing, validators.FieldTitle)
	}
	if strings.TrimSpace(e.body) == "" {
		missing = append(missing, validators.FieldBody)
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

func (e *snippetEditor) submitInsert(ctx context.Context) (models.Snippet, error) {
	current, ok := e.sessions.Current()
	if !ok {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrAuthorization, ErrNoActiveSession)
	}

	req := models.InsertSnippetRequest{
		Title:            e.title,
		Body:             e.body,
		Description:      e.description,
		Attachment:       e.attachment,
		OwnerDisplayName: current.DisplayName,
	}

	created, err := e.adapter.CreateSnippet(ctx, req)
	if err != nil {
		// staged fields stay untouched so the user can retry
		return models.Snippet{}, e.persistenceError("create snippet", err)
	}

	e.logger.Info().Str("id", created.ID).Msg("snippet created")
	e.StartCreate()
	return created, nil
}

func (e *snippetEditor) submitUpdate(ctx context.Context) (models.Snippet, error) {
	// nil attachment means "keep the stored one"
	req := models.UpdateSnippetRequest{
		Title:       e.title,
		Body:        e.body,
		Description: e.description,
		Attachment:  e.attachment,
	}

	updated, err := e.adapter.UpdateSnippet(ctx, e.snippetID, req)
	if err != nil {
		return models.Snippet{}, e.persistenceError("update snippet", err)
	}

	e.logger.Info().Str("id", updated.ID).Msg("snippet updated")
	e.StartCreate()
	return updated, nil
}

func (e *snippetEditor) persistenceError(op string, err error) error {
	switch {
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrAttachmentTooLarge, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAuthorization, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
	}
}
