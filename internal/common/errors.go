// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrInvalidCredentials covers every login/change-password failure cause:
	// unknown email, soft-deleted user, wrong password, hashing-engine failure.
	// The message is deliberately uniform to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// User creation errors.
	ErrRoleNotFound      = errors.New("role does not exist")
	ErrEmailAlreadyTaken = errors.New("email already registered")

	// Password-reset lifecycle errors. An unknown code, an already-used code
	// and a concurrently-consumed code all surface as ErrInvalidResetToken.
	ErrInvalidResetToken = errors.New("invalid token")
	ErrResetTokenExpired = errors.New("expired token")

	// Auth errors (invalid or malformed access token).
	ErrInvalidAccessToken = errors.New("invalid access token")
)
