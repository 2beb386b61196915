package models

// Session is the authenticated identity context exposed to the client core.
// All mutating actions are authorized against it.
type Session struct {
	// UserID is the identifier of the signed-in user, matched against
	// [Snippet.OwnerID] for edit/delete permission.
	UserID int64 `json:"user_id"`

	// Email is the signed-in user's login email.
	Email string `json:"email"`

	// DisplayName is the name shown for the user and snapshotted into
	// newly created snippets.
	DisplayName string `json:"display_name"`
}
