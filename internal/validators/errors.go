package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyBody          = errors.New("body is required")
	ErrAttachmentTooLarge = errors.New("attachment exceeds the maximum allowed size")
	ErrInvalidAttachment  = errors.New("attachment content is not valid")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not valid")
	ErrEmptyPassword = errors.New("password is required")
)
