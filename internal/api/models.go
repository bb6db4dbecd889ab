package api

// Common request/response structures

// CardData represents a single card in request and response payloads.
type CardData struct {
	Question   string `json:"question"   validate:"required"`
	Answer     string `json:"answer"     validate:"required"`
	Difficulty string `json:"difficulty" validate:"required"`
}

// GenerateCardsRequest defines the payload for the card generation endpoint.
// The difficulty string is parsed case-insensitively after validation.
type GenerateCardsRequest struct {
	Text       string `json:"text"       validate:"required"`
	Difficulty string `json:"difficulty" validate:"required"`
}

// GenerateCardsResponse defines the successful response for the card
// generation endpoint.
type GenerateCardsResponse struct {
	Cards []CardData `json:"cards"`
	Count int        `json:"count"`
}

// ExportCardsRequest defines the payload for the CSV export endpoint.
type ExportCardsRequest struct {
	Cards []CardData `json:"cards" validate:"required,min=1,dive"`
}
