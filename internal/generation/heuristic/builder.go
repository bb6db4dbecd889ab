package heuristic

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/studyforge/cardgen-api/internal/domain"
	"github.com/studyforge/cardgen-api/internal/generation"
)

const (
	// maxChunkRunes caps the length, in characters, of a padding or
	// summary card's answer.
	maxChunkRunes = 200

	// paddingThresholdRunes is the minimum total text length, in
	// characters, before padding cards are generated.
	paddingThresholdRunes = 50
)

// summaryQuestion is the question on the degenerate single card built
// when the text yields no content units and is too short to chunk.
const summaryQuestion = "What is the main topic of this document?"

// Builder constructs study cards from raw text without any external
// service. Its output is deterministic for a given input.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder creates a Builder. A nil logger falls back to slog.Default.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Build produces between 1 and 10 cards from the text at the requested
// difficulty. One card is built per content unit; if fewer than ten
// units exist and the text is long enough, generic section cards padded
// from text chunks fill the remainder. Text too short to segment at all
// degenerates to a single summary card.
func (b *Builder) Build(text string, difficulty domain.Difficulty) []domain.Card {
	units := Segment(text)
	if len(units) > generation.MaxCards {
		units = units[:generation.MaxCards]
	}

	tier := questionTemplates(difficulty)
	cards := make([]domain.Card, 0, generation.MaxCards)
	for i, unit := range units {
		var question string
		if term, ok := KeyTerm(unit); ok {
			question = fmt.Sprintf(tier[i%len(tier)], term)
		} else {
			question = fallbackQuestions[i%len(fallbackQuestions)]
		}

		card, err := domain.NewCard(question, unit, difficulty)
		if err != nil {
			// One bad unit never aborts the batch.
			b.logger.Warn("skipping content unit", "index", i, "error", err)
			continue
		}
		cards = append(cards, card)
	}

	cards = padWithSections(cards, text, difficulty)

	if len(cards) == 0 {
		// The answer mirrors the input even when blank, so callers always
		// receive exactly one card for degenerate input.
		cards = append(cards, domain.Card{
			Question:   summaryQuestion,
			Answer:     truncateRunes(text, maxChunkRunes),
			Difficulty: difficulty,
		})
	}

	if len(cards) > generation.MaxCards {
		cards = cards[:generation.MaxCards]
	}

	return cards
}

// padWithSections appends generic section cards built from roughly
// equal chunks of the source text until ten cards exist or no text
// remains to chunk.
func padWithSections(cards []domain.Card, text string, difficulty domain.Difficulty) []domain.Card {
	runes := []rune(text)
	for len(cards) < generation.MaxCards && len(runes) > paddingThresholdRunes {
		chunkSize := len(runes) / (generation.MaxCards - len(cards))
		start := len(cards) * chunkSize
		if start >= len(runes) {
			break
		}

		end := start + min(chunkSize, maxChunkRunes)
		if end > len(runes) {
			end = len(runes)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk == "" {
			break
		}

		card, err := domain.NewCard(sectionQuestions[len(cards)%len(sectionQuestions)], chunk, difficulty)
		if err != nil {
			break
		}
		cards = append(cards, card)
	}

	return cards
}

// truncateRunes shortens s to at most n characters, appending an
// ellipsis marker when truncation occurred.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
