package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// InsertSnippetRequest carries the fields of a brand-new snippet.
// OwnerID is never part of the payload: the server derives it from the
// bearer token. OwnerDisplayName is the client-side snapshot of the
// session's display name; when empty the server falls back to the
// authenticated user's own record.
type InsertSnippetRequest struct {
	Title            string      `json:"title"`
	Body             string      `json:"body"`
	Description      string      `json:"description,omitempty"`
	Attachment       *Attachment `json:"attachment,omitempty"`
	OwnerDisplayName string      `json:"owner_display_name,omitempty"`
}

// UpdateSnippetRequest carries only the mutable fields of an existing
// snippet. Owner identity and creation timestamp are immutable and are
// deliberately absent. A nil Attachment means "keep the stored one".
type UpdateSnippetRequest struct {
	Title       string      `json:"title"`
	Body        string      `json:"body"`
	Description string      `json:"description,omitempty"`
	Attachment  *Attachment `json:"attachment,omitempty"`
}

// ErrorResponse is the JSON body returned for non-2xx API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
