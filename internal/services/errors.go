package services

import "errors"

// Service-level error taxonomy. Handlers translate these to HTTP statuses;
// nothing below this layer knows about status codes.
var (
	// ErrInvalidInput: a required request field is missing or malformed (400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized: no session or bad credentials (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound: entity absent or not owned by the caller (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict: duplicate subject, email, or quiz attempt (409).
	ErrConflict = errors.New("conflict")
)
