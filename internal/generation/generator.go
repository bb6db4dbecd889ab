package generation

import (
	"context"

	"github.com/studyforge/cardgen-api/internal/domain"
)

// MaxCards is the upper bound on the number of cards any generation
// path may return for a single request.
const MaxCards = 10

// Generator defines the interface for generating study cards from text.
// Implementations wrap external AI/LLM services; callers treat every
// error as "no result" and fall back to heuristic generation.
type Generator interface {
	// GenerateCards creates up to MaxCards cards from the provided source
	// text at the requested difficulty. Every returned card carries the
	// requested difficulty, regardless of what the backend produced.
	//
	// Returns an error (see errors.go for the sentinel values) when the
	// backend is unavailable, its output cannot be parsed, or no usable
	// cards survive validation. A nil error implies a non-empty result.
	GenerateCards(ctx context.Context, text string, difficulty domain.Difficulty) ([]domain.Card, error)
}
