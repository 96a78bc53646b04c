package store

import "errors"

var (
	// ErrNotFound is returned when no user matches the given lookup
	// predicate. The authentication boundary converts it to an
	// unauthorized failure; registration helpers surface it as-is.
	ErrNotFound = errors.New("user is not found")

	// ErrAlreadyExists is returned when an insert or update violates one
	// of the directory's uniqueness constraints (username, email, phone,
	// google_id, facebook_id). Callers racing a probe-then-create
	// sequence should retry once on this error.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrUnknownField is returned when a dynamic predicate or update
	// references a column outside the allowlisted set.
	ErrUnknownField = errors.New("unknown user field")
)
