package utils

import "errors"

// Sentinel errors returned by services. Handlers map them onto HTTP error
// responses with errors.Is; anything unmatched becomes a 500 with a generic
// message and the underlying error is only logged.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
)
