// Package export serializes card lists into the tabular download
// format: a header row followed by one row per card, column order
// question, answer, difficulty. The matching reader exists so exported
// files can be verified to round-trip.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/studyforge/cardgen-api/internal/domain"
)

// Header is the fixed column order of the export format.
var Header = []string{"question", "answer", "difficulty"}

// ErrMissingHeader is returned when input lacks the expected header row.
var ErrMissingHeader = errors.New("csv input missing header row")

// WriteCards serializes the cards to w in CSV form, header row first,
// preserving card order.
func WriteCards(w io.Writer, cards []domain.Card) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, card := range cards {
		row := []string{card.Question, card.Answer, card.Difficulty.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCards parses CSV input previously produced by WriteCards back
// into cards, preserving row order.
func ReadCards(r io.Reader) ([]domain.Card, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, col := range Header {
		if header[i] != col {
			return nil, fmt.Errorf("%w: got %v", ErrMissingHeader, header)
		}
	}

	var cards []domain.Card
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		difficulty, err := domain.ParseDifficulty(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(cards)+1, err)
		}

		card, err := domain.NewCard(row[0], row[1], difficulty)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(cards)+1, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}
