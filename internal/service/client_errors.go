package service

import (
	"errors"
	"strings"
)

// Client-side sentinels. Every one of them is recoverable: the failure is
// surfaced to the initiating action and local state keeps its last known-good
// snapshot. No automatic retries happen anywhere in the client core.
var (
	ErrAuthorization   = errors.New("session is not the owner of the snippet")
	ErrFetch           = errors.New("failed to fetch snippets from server")
	ErrPersistence     = errors.New("failed to persist changes on server")
	ErrNoActiveSession = errors.New("no active session")
	ErrDeleteInFlight   = errors.New("a delete request is already executing")
	ErrNothingToConfirm = errors.New("no delete request is pending")
)

// ValidationError reports the required snippet fields that were left empty
// on submit. It is returned before any server call is made.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.MissingFields, ", ")
}
