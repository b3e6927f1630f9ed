package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrRateLimited       = errors.New("too many attempts")
	ErrMalformedResponse = errors.New("malformed store response")
)
