package models

import "errors"

// Domain error taxonomy. Services wrap these with context via fmt.Errorf
// and %w; handlers map them to HTTP statuses with errors.Is.
var (
	// ErrInvalidInput marks a malformed, missing or out-of-range field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized covers missing/invalid sessions and bad credentials.
	// The message shown to clients never says which part was wrong.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks a duplicate unique field (username or email).
	ErrConflict = errors.New("username or email already exists")

	// ErrNotFound is returned both when a record does not exist and when it
	// belongs to another user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
)
