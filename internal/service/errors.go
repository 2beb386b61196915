package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAttachmentTooLarge is kept distinct from generic validation
	// failures so transports can map it to their own status (413 on HTTP).
	ErrAttachmentTooLarge = errors.New("attachment exceeds the maximum allowed size")
)
