package repository

import "errors"

// Sentinel errors shared by all repositories. Usecases translate these into
// the apperr taxonomy; nothing below this layer shapes HTTP responses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key violation")
	// ErrImmutable signals a write against a row in a terminal status.
	ErrImmutable = errors.New("record is immutable")
)
