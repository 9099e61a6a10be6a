// Package common defines shared constants and sentinel errors used across
// client and server layers of matchly. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorLoginAlreadyExists = errors.New("login already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Integrity errors: misconfiguration or damaged stored data. Must never
	// be collapsed into a user-visible auth failure.
	ErrWeakSecretKey     = errors.New("secret key missing or too short")
	ErrCorruptCredential = errors.New("corrupt stored credential")
)
