package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MaxAttachmentSize is the hard ceiling, in bytes, for the raw (pre-encoding)
// size of a snippet attachment. Files larger than this are rejected on both
// the client and the server.
const MaxAttachmentSize = 1 << 20 // 1 MiB

// Snippet represents a single contekan: a named piece of text (usually source
// code) owned by the user who created it and visible to every authenticated
// user.
type Snippet struct {
	// ID is the unique identifier of the snippet, assigned by the server at
	// insert time. It never changes afterwards.
	ID string `json:"id"`

	// Title is the human-readable name of the snippet. Required.
	Title string `json:"title"`

	// Body is the snippet content itself. Required.
	Body string `json:"body"`

	// Description is an optional free-form annotation. Empty means none.
	Description string `json:"description,omitempty"`

	// Attachment is an optional small file stored inline with the snippet.
	// nil means no attachment; an empty value is rendered identically.
	Attachment *Attachment `json:"attachment,omitempty"`

	// OwnerID identifies the creating user. It is set once by the server
	// from the authenticated session and is the sole authority for
	// edit/delete permission.
	OwnerID int64 `json:"owner_id"`

	// OwnerDisplayName is a snapshot of the owner's display name (or email,
	// when no display name was set) taken at creation time. It is
	// intentionally not kept in sync with later profile changes.
	OwnerDisplayName string `json:"owner_display_name"`

	// CreatedAt is the server-assigned creation timestamp, immutable and
	// used as the default sort key.
	CreatedAt time.Time `json:"created_at"`
}

// HasAttachment reports whether the snippet carries a non-empty attachment.
// A nil pointer and a zero-value attachment are equivalent.
func (s Snippet) HasAttachment() bool {
	return s.Attachment != nil && !s.Attachment.IsEmpty()
}

// TableName returns the name of the database table
// associated with the Snippet model.
func (s Snippet) TableName() string {
	return "contekans"
}

// Attachment is a small file stored inline with a snippet. The content is
// kept fully in memory and base64-encoded before any write is issued; there
// is no streaming or partial encode.
type Attachment struct {
	// FileName is the original name of the attached file.
	FileName string `json:"file_name"`

	// Size is the raw (pre-encoding) size of the file in bytes.
	Size int64 `json:"size"`

	// Data is the base64-encoded file content.
	Data string `json:"data"`
}

// IsEmpty reports whether the attachment carries no content.
func (a Attachment) IsEmpty() bool {
	return a.FileName == "" && a.Size == 0 && a.Data == ""
}

// Value implements driver.Valuer so that an *Attachment can be stored in a
// single nullable TEXT column as JSON. A nil or empty attachment is stored
// as SQL NULL.
func (a *Attachment) Value() (driver.Value, error) {
	if a == nil || a.IsEmpty() {
		return nil, nil
	}

	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode attachment: %w", err)
	}
	return string(payload), nil
}

// Scan implements sql.Scanner for the attachment TEXT column.
// NULL scans into the zero value; callers should treat a scanned empty
// attachment as absent.
func (a *Attachment) Scan(src any) error {
	if src == nil {
		*a = Attachment{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported source type for attachment")
	}

	if len(raw) == 0 {
		*a = Attachment{}
		return nil
	}

	if err := json.Unmarshal(raw, a); err != nil {
		return fmt.Errorf("decode attachment: %w", err)
	}
	return nil
}
