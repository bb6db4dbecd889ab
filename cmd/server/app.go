package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/studyforge/cardgen-api/internal/config"
	"github.com/studyforge/cardgen-api/internal/generation"
	"github.com/studyforge/cardgen-api/internal/generation/heuristic"
	"github.com/studyforge/cardgen-api/internal/platform/gemini"
	"github.com/studyforge/cardgen-api/internal/service"
)

// application holds the initialized dependencies shared by the HTTP
// handlers.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	cardGenService *service.CardGenService
}

// newApplication wires the service layer. The generative capability is
// probed exactly once here; the rest of the process treats the outcome
// as immutable.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator := probeGenerativeCapability(ctx, logger, cfg.LLM)

	cardGenService, err := service.NewCardGenService(generator, heuristic.NewBuilder(logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card generation service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		cardGenService: cardGenService,
	}, nil
}

// probeGenerativeCapability attempts to acquire the generative backend.
// Failure is logged, never surfaced: without the capability the service
// runs on the heuristic path alone.
func probeGenerativeCapability(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) generation.Generator {
	generator, err := gemini.NewGenerator(ctx, logger, cfg)
	if err != nil {
		logger.Warn("Generative capability unavailable, using heuristic generation only",
			"error", err)
		return nil
	}

	logger.Info("Generative capability enabled", "models", cfg.Models)
	return generator
}
