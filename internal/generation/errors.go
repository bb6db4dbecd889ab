package generation

import "errors"

// Common errors returned by generation backends
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate cards from text")

	// ErrInvalidResponse is returned when the backend response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrNoResult is returned when the backend produced no usable cards
	ErrNoResult = errors.New("no cards produced by language model")

	// ErrUnavailable is returned when the generative capability is not configured or cannot be reached
	ErrUnavailable = errors.New("generative backend unavailable")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
