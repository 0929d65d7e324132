package models

import "errors"

// Domain errors shared across services and mapped to HTTP status codes at
// the handler boundary.
var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user. The two cases must stay indistinguishable to callers.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a unique constraint violation (duplicate username).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials covers bad username/password pairs and bad,
	// expired, or missing tokens. The message is deliberately generic.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput signals a malformed or incomplete request payload.
	ErrInvalidInput = errors.New("invalid input")
)
