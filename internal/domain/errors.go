package domain

import "errors"

// Common domain errors. Repositories return these; usecases translate them
// into the entity-family error codes surfaced to clients.
var (
	// ErrNotFound covers both a missing row and a row owned by someone else:
	// lookups are scoped by owner, so the two cases are indistinguishable.
	ErrNotFound = errors.New("resource not found")

	// ErrWrongState means the row exists and is owned by the caller, but its
	// lifecycle state does not permit the requested operation.
	ErrWrongState = errors.New("resource state does not allow this operation")
)
