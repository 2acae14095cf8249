// Package common defines shared constants and sentinel errors used across
// the ContactHub server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors. Always generic: the API never distinguishes a missing
	// user from a bad password or a revoked token.
	ErrorUnauthorized = errors.New("unauthorized")

	// Unique-key errors (duplicate username at registration).
	ErrorConflict = errors.New("already exists")
)
