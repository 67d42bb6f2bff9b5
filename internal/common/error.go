// Package common contains shared constants and sentinel errors used across
// phonebook components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors.
	ErrorInvalidCredentials = errors.New("wrong credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrorUnauthenticated    = errors.New("not authenticated")
)
