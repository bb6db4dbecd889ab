package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyforge/cardgen-api/internal/domain"
	"github.com/studyforge/cardgen-api/internal/export"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	cards := []domain.Card{
		{Question: "What is osmosis?", Answer: "Diffusion of water across a membrane.", Difficulty: domain.DifficultyEasy},
		{Question: "Why does entropy increase?", Answer: "Isolated systems tend toward disorder.", Difficulty: domain.DifficultyMedium},
		{Question: "Commas, \"quotes\", and\nnewlines?", Answer: "All survive CSV quoting.", Difficulty: domain.DifficultyHard},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCards(&buf, cards))

	got, err := export.ReadCards(&buf)

	require.NoError(t, err)
	require.Len(t, got, len(cards))
	for i := range cards {
		assert.Equal(t, cards[i].Question, got[i].Question, "row %d question", i)
		assert.Equal(t, cards[i].Answer, got[i].Answer, "row %d answer", i)
		assert.Equal(t, cards[i].Difficulty, got[i].Difficulty, "row %d difficulty", i)
	}
}

func TestWriteCardsHeaderAndOrder(t *testing.T) {
	t.Parallel()

	cards := []domain.Card{
		{Question: "Q1", Answer: "A1", Difficulty: domain.DifficultyEasy},
		{Question: "Q2", Answer: "A2", Difficulty: domain.DifficultyEasy},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCards(&buf, cards))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "question,answer,difficulty", lines[0])
	assert.Equal(t, "Q1,A1,Easy", lines[1])
	assert.Equal(t, "Q2,A2,Easy", lines[2])
}

func TestWriteCardsEmptyListStillWritesHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCards(&buf, nil))
	assert.Equal(t, "question,answer,difficulty\n", buf.String())
}

func TestReadCardsRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "wrong header", input: "front,back,level\nQ,A,Easy\n"},
		{name: "unknown difficulty", input: "question,answer,difficulty\nQ,A,Brutal\n"},
		{name: "wrong column count", input: "question,answer,difficulty\nQ,A\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := export.ReadCards(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}
