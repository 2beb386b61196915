package validators

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/mfadhilr/contekan/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the snippet title.
	FieldTitle = "title"

	// FieldBody targets the snippet body.
	FieldBody = "body"

	// FieldAttachment targets the optional inline attachment.
	FieldAttachment = "attachment"

	// FieldEmail targets the account email in auth requests.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password in auth requests.
	FieldPassword = "password"
)

// SnippetValidator implements the Validator interface for the snippet and
// auth domain models: InsertSnippetRequest, UpdateSnippetRequest,
// Attachment, RegisterRequest, and LoginRequest.
type SnippetValidator struct{}

// NewSnippetValidator returns a stateless [Validator] for snippet and auth
// payloads. Safe for concurrent use.
func NewSnippetValidator() Validator {
	return SnippetValidator{}
}

func (v SnippetValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch payload := value.(type) {
	case models.InsertSnippetRequest:
		return v.validateSnippetFields(payload.Title, payload.Body, payload.Attachment, fields)
	case models.UpdateSnippetRequest:
		return v.validateSnippetFields(payload.Title, payload.Body, payload.Attachment, fields)
	case *models.Attachment:
		return v.validateAttachment(payload)
	case models.RegisterRequest:
		return v.validateCredentials(payload.Email, payload.Password, fields)
	case models.LoginRequest:
		return v.validateCredentials(payload.Email, payload.Password, fields)
	default:
		return ErrUnsupportedType
	}
}

func (v SnippetValidator) validateSnippetFields(title, body string, attachment *models.Attachment, fields []string) error {
	for _, field := range v.scope(fields, FieldTitle, FieldBody, FieldAttachment) {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(title) == "" {
				return ErrEmptyTitle
			}
		case FieldBody:
			if strings.TrimSpace(body) == "" {
				return ErrEmptyBody
			}
		case FieldAttachment:
			if err := v.validateAttachment(attachment); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v SnippetValidator) validateCredentials(email, password string, fields []string) error {
	for _, field := range v.scope(fields, FieldEmail, FieldPassword) {
		switch field {
		case FieldEmail:
			if email == "" {
				return ErrEmptyEmail
			}
			if !strings.Contains(email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateAttachment accepts a nil or empty attachment and otherwise checks
// that the declared size fits the limit and that the base64 payload decodes
// to exactly that many bytes.
func (v SnippetValidator) validateAttachment(attachment *models.Attachment) error {
	if attachment == nil || attachment.IsEmpty() {
		return nil
	}

	if attachment.Size > models.MaxAttachmentSize {
		return ErrAttachmentTooLarge
	}
	if attachment.FileName == "" || attachment.Size <= 0 {
		return ErrInvalidAttachment
	}

	decoded, err := base64.StdEncoding.DecodeString(attachment.Data)
	if err != nil {
		return ErrInvalidAttachment
	}
	if int64(len(decoded)) != attachment.Size {
		return ErrInvalidAttachment
	}
	return nil
}

// scope returns the requested fields, or all known fields when none were
// requested.
func (v SnippetValidator) scope(requested []string, all ...string) []string {
	if len(requested) == 0 {
		return all
	}
	return requested
}
