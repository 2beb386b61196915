// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// contekan server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgAttachmentTooLarge is returned when a snippet attachment exceeds
	// the maximum allowed raw size.
	MsgAttachmentTooLarge = "attachment too large"

	// MsgNotSnippetOwner is returned when the authenticated user attempts
	// to modify or delete a snippet that belongs to a different user.
	MsgNotSnippetOwner = "snippet belongs to another user"

	// MsgSnippetNotFound is returned when a mutation targets a snippet id
	// that does not exist.
	MsgSnippetNotFound = "snippet not found"
)
