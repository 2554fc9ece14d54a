package question

import "errors"

var (
	// ErrNotFound marks an empty or missing result for a requested page,
	// search term, category, or question id. Wrapping errors carry the
	// identifying value in their message.
	ErrNotFound = errors.New("not found")

	// ErrUnprocessable marks a create request that failed validation or
	// that the store rejected. No partial write survives it.
	ErrUnprocessable = errors.New("unprocessable")
)
