package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// Name is the display name of the user. It is non-sensitive, may be
	// shown in UI, and is the value snapshotted into
	// [Snippet.OwnerDisplayName] at creation time. May be empty, in which
	// case Email is used instead.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized and never leaves the server process.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the name to show for this user: Name when set,
// otherwise Email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
