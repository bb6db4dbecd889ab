package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/studyforge/cardgen-api/internal/api/shared"
	"github.com/studyforge/cardgen-api/internal/domain"
	"github.com/studyforge/cardgen-api/internal/export"
)

// minGenerateRunes is the minimum trimmed input length accepted by the
// generation endpoint. The generation core itself degrades gracefully
// below this; the check exists to reject inputs that cannot produce
// meaningful cards.
const minGenerateRunes = 50

// CardGenService abstracts the generation facade for the handlers.
type CardGenService interface {
	Generate(ctx context.Context, text string, difficulty domain.Difficulty) []domain.Card
}

// CardHandler handles card generation and export HTTP requests.
type CardHandler struct {
	cardGenService CardGenService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardGenService CardGenService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		cardGenService: cardGenService,
		validator:      validator.New(),
		logger:         logger,
	}
}

// GenerateCards handles POST /api/cards/generate requests.
func (h *CardHandler) GenerateCards(w http.ResponseWriter, r *http.Request) {
	var req GenerateCardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Difficulty must be Easy, Medium, or Hard")
		return
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Text)) < minGenerateRunes {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Please provide at least %d characters of text", minGenerateRunes))
		return
	}

	cards := h.cardGenService.Generate(r.Context(), req.Text, difficulty)

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateCardsResponse{
		Cards: cardsToData(cards),
		Count: len(cards),
	})
}

// ExportCards handles POST /api/cards/export requests. It serializes
// the submitted cards as a CSV attachment, preserving card order.
func (h *CardHandler) ExportCards(w http.ResponseWriter, r *http.Request) {
	var req ExportCardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cards := make([]domain.Card, 0, len(req.Cards))
	for i, c := range req.Cards {
		difficulty, err := domain.ParseDifficulty(c.Difficulty)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				fmt.Sprintf("Card %d: difficulty must be Easy, Medium, or Hard", i))
			return
		}

		card, err := domain.NewCard(c.Question, c.Answer, difficulty)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, fmt.Sprintf("Card %d: %v", i, err))
			return
		}
		cards = append(cards, card)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="flashcards.csv"`)
	w.WriteHeader(http.StatusOK)

	if err := export.WriteCards(w, cards); err != nil {
		// Headers are already sent; all that remains is to log.
		h.logger.Error("Failed to write CSV export", "error", err,
			"trace_id", shared.GetTraceID(r.Context()))
	}
}

// cardsToData converts domain cards to their payload representation.
func cardsToData(cards []domain.Card) []CardData {
	data := make([]CardData, 0, len(cards))
	for _, card := range cards {
		data = append(data, CardData{
			Question:   card.Question,
			Answer:     card.Answer,
			Difficulty: card.Difficulty.String(),
		})
	}
	return data
}
