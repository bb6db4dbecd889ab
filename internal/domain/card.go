package domain

import "errors"

// Card-specific validation errors
var (
	// ErrCardQuestionEmpty is returned when a card's question is empty.
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")

	// ErrCardAnswerEmpty is returned when a card's answer is empty.
	ErrCardAnswerEmpty = errors.New("card answer cannot be empty")
)

// Card represents a single question/answer study card tagged with a
// difficulty level. Cards are plain values: they carry no persistent
// identity and are immutable once created.
type Card struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewCard creates a Card with the given question, answer, and difficulty.
// Returns an error if validation fails.
func NewCard(question, answer string, difficulty Difficulty) (Card, error) {
	card := Card{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c Card) Validate() error {
	if c.Question == "" {
		return ErrCardQuestionEmpty
	}

	if c.Answer == "" {
		return ErrCardAnswerEmpty
	}

	return c.Difficulty.Validate()
}
