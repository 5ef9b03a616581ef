package course

import "errors"

// Sentinel errors shared across the store. Callers match with errors.Is;
// layers add context with fmt.Errorf("...: %w", err) and never swallow.
var (
	// ErrValidation indicates rejected input (empty title, missing name).
	// No state has been mutated.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateTitle indicates a create colliding with an existing title.
	// No state has been mutated.
	ErrDuplicateTitle = errors.New("title already in use")

	// ErrNotFound indicates an update or delete referencing an ID absent
	// from the relational index.
	ErrNotFound = errors.New("not found")
)
