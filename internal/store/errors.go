package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no rows.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSnippetNotFound is returned when the requested snippet does not
	// exist.
	ErrSnippetNotFound = errors.New("snippet not found")

	// ErrNotSnippetOwner is returned when a mutation targets a snippet
	// owned by a different user.
	ErrNotSnippetOwner = errors.New("not the owner of the snippet")

	ErrBuildingQuery  = errors.New("failed to build query")
	ErrExecutingQuery = errors.New("failed to execute query")
	ErrScanningRow    = errors.New("failed to scan row")
	ErrScanningRows   = errors.New("error occurred during rows iteration")

	errUnsupportedDriver = errors.New("unsupported database driver")
)
