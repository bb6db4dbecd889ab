package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"google.golang.org/genai"

	"github.com/studyforge/cardgen-api/internal/config"
	"github.com/studyforge/cardgen-api/internal/domain"
	"github.com/studyforge/cardgen-api/internal/generation"
)

// defaultMaxPromptRunes caps how much source text is embedded in the
// prompt; longer input is truncated with an ellipsis marker.
const defaultMaxPromptRunes = 1200

// promptTemplateText asks for a bare JSON array so the response can be
// extracted with a bracket scan even when the model adds prose around it.
const promptTemplateText = `Create up to 10 flashcards from this text. Format as JSON array:
[{"question": "What is...?", "answer": "...", "difficulty": "{{.Difficulty}}"}]

Text: {{.Text}}

JSON:`

var promptTemplate = template.Must(template.New("flashcards").Parse(promptTemplateText))

// temperature keeps generation close to the source text.
var temperature = float32(0.3)

// Generator implements the generation.Generator interface using
// Google's Gemini API to generate study cards from source text.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// models is the ordered preference list of model names; each request
	// walks the list until one yields a usable result
	models []string

	// maxPromptRunes bounds how much source text the prompt embeds
	maxPromptRunes int
}

// NewGenerator creates a Generator from the LLM configuration. It fails
// when the capability cannot be established: a missing API key, an empty
// model list, or a client that cannot be constructed. Callers treat any
// error as "capability absent" and continue without a generative path.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", generation.ErrUnavailable)
	}

	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("%w: model list cannot be empty", generation.ErrInvalidConfig)
	}

	maxPromptRunes := cfg.MaxPromptChars
	if maxPromptRunes <= 0 {
		maxPromptRunes = defaultMaxPromptRunes
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrUnavailable, err)
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"models", cfg.Models,
		"max_prompt_chars", maxPromptRunes)

	return &Generator{
		logger:         logger,
		client:         client,
		models:         cfg.Models,
		maxPromptRunes: maxPromptRunes,
	}, nil
}

// GenerateCards requests up to generation.MaxCards cards from the first
// model in the preference list that returns a parseable, non-empty
// result. Every error is reported through the generation sentinels so
// the caller can fall back to heuristic construction.
func (g *Generator) GenerateCards(
	ctx context.Context,
	text string,
	difficulty domain.Difficulty,
) ([]domain.Card, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	prompt, err := g.buildPrompt(text, difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	for _, model := range g.models {
		g.logger.InfoContext(ctx, "Requesting cards from model", "model", model)

		resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt),
			&genai.GenerateContentConfig{Temperature: &temperature})
		if err != nil {
			g.logger.WarnContext(ctx, "Model call failed", "model", model, "error", err)
			continue
		}

		cards, err := parseCards(resp.Text(), difficulty)
		if err != nil {
			g.logger.WarnContext(ctx, "Model output unusable", "model", model, "error", err)
			continue
		}

		g.logger.InfoContext(ctx, "Model produced cards", "model", model, "count", len(cards))
		return cards, nil
	}

	return nil, fmt.Errorf("%w: no model produced usable cards", generation.ErrNoResult)
}

// buildPrompt renders the prompt template, truncating the source text
// to the configured maximum.
func (g *Generator) buildPrompt(text string, difficulty domain.Difficulty) (string, error) {
	runes := []rune(text)
	if len(runes) > g.maxPromptRunes {
		text = string(runes[:g.maxPromptRunes]) + "..."
	}

	var buf bytes.Buffer
	err := promptTemplate.Execute(&buf, promptData{
		Text:       text,
		Difficulty: difficulty.String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// parseCards extracts the first array-looking substring of the raw model
// output, unmarshals it, and keeps only entries carrying both a question
// and an answer. The requested difficulty overwrites whatever the model
// emitted. An empty validated set is an error, never an empty slice.
func parseCards(raw string, difficulty domain.Difficulty) ([]domain.Card, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array in model output", generation.ErrInvalidResponse)
	}

	var entries []rawCard
	if err := json.Unmarshal([]byte(raw[start:end+1]), &entries); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON array: %v", generation.ErrInvalidResponse, err)
	}

	cards := make([]domain.Card, 0, len(entries))
	for _, entry := range entries {
		card, err := domain.NewCard(entry.Question, entry.Answer, difficulty)
		if err != nil {
			// Entries missing fields are dropped, not fatal.
			continue
		}

		cards = append(cards, card)
		if len(cards) == generation.MaxCards {
			break
		}
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no usable cards in model output", generation.ErrInvalidResponse)
	}

	return cards, nil
}
