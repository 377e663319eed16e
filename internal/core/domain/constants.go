package domain

import "errors"

var (
	ErrConfigMissing      = errors.New("required configuration missing")
	ErrStoreUnavailable   = errors.New("movie store unavailable")
	ErrMalformedRecord    = errors.New("malformed movie record")
	ErrSendingReplyFailed = errors.New("failed to send reply")
)

const (
	GenericErrorText = "An error occurred while processing your request"
	NoGenreMatchText = "No movie found for the specified genre."
)
