package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studyforge/cardgen-api/internal/domain"
	"github.com/studyforge/cardgen-api/internal/generation"
	"github.com/studyforge/cardgen-api/internal/generation/heuristic"
)

// CardGenService is the single entry point for card generation. It
// attempts the generative backend when one was injected at startup and
// falls back to heuristic construction on any failure or empty result.
type CardGenService struct {
	// generator is the optional generative backend; nil means the
	// capability probe failed or was never configured.
	generator generation.Generator

	// builder is the deterministic fallback path, always present.
	builder *heuristic.Builder

	// logger is used for structured logging
	logger *slog.Logger
}

// NewCardGenService creates a CardGenService. The generator may be nil
// (capability absent); the builder is required.
func NewCardGenService(
	generator generation.Generator,
	builder *heuristic.Builder,
	logger *slog.Logger,
) (*CardGenService, error) {
	if builder == nil {
		return nil, errors.New("heuristic builder cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CardGenService{
		generator: generator,
		builder:   builder,
		logger:    logger,
	}, nil
}

// GenerativeEnabled reports whether a generative backend was injected.
func (s *CardGenService) GenerativeEnabled() bool {
	return s.generator != nil
}

// Generate produces between 1 and 10 cards from the text at the
// requested difficulty. It never returns an error: the generative path
// is opportunistic, and the heuristic builder guarantees a non-empty
// result down to a single summary card for degenerate input.
//
// Regardless of which path produced the cards, the returned list is
// capped at generation.MaxCards and every card carries the requested
// difficulty.
func (s *CardGenService) Generate(
	ctx context.Context,
	text string,
	difficulty domain.Difficulty,
) []domain.Card {
	log := s.logger.With(
		slog.String("generation_id", uuid.New().String()),
		slog.String("difficulty", difficulty.String()),
		slog.Int("text_length", len(text)),
	)

	if s.generator != nil {
		cards, err := s.generator.GenerateCards(ctx, text, difficulty)
		switch {
		case err != nil:
			log.WarnContext(ctx, "Generative backend failed, falling back to heuristic path",
				"error", err)
		case len(cards) == 0:
			log.WarnContext(ctx, "Generative backend returned no cards, falling back to heuristic path")
		default:
			log.InfoContext(ctx, "Generative backend produced cards", "count", len(cards))
			return s.finalize(cards, difficulty)
		}
	}

	cards := s.builder.Build(text, difficulty)
	log.InfoContext(ctx, "Heuristic builder produced cards", "count", len(cards))
	return s.finalize(cards, difficulty)
}

// finalize enforces the output invariants independently of which path
// produced the cards: at most MaxCards entries, every card stamped with
// the requested difficulty.
func (s *CardGenService) finalize(cards []domain.Card, difficulty domain.Difficulty) []domain.Card {
	if len(cards) > generation.MaxCards {
		cards = cards[:generation.MaxCards]
	}
	for i := range cards {
		cards[i].Difficulty = difficulty
	}
	return cards
}
