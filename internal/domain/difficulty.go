package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned when a difficulty value is not one of
// the three recognized levels.
var ErrInvalidDifficulty = errors.New("difficulty must be one of Easy, Medium, Hard")

// Difficulty represents the requested difficulty level of a card.
// The three levels are ordinal (Easy < Medium < Hard) but carry no
// numeric meaning beyond selecting a question-template tier.
type Difficulty string

// Possible difficulty values
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty converts a string into a Difficulty. Matching is
// case-insensitive; the returned value is always canonical.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
}

// Validate checks that the Difficulty is one of the recognized levels.
func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, string(d))
	}
}

// String returns the canonical string form of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}
