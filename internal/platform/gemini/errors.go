package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyText is returned when the source text is empty.
	ErrEmptyText = errors.New("source text cannot be empty")
)
