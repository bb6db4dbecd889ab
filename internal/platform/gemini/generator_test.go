package gemini

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyforge/cardgen-api/internal/config"
	"github.com/studyforge/cardgen-api/internal/domain"
	"github.com/studyforge/cardgen-api/internal/generation"
)

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(context.Background(), nil, config.LLMConfig{
		Models: []string{"gemini-2.0-flash"},
	})
	assert.ErrorIs(t, err, generation.ErrUnavailable)
}

func TestNewGeneratorRequiresModels(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(context.Background(), nil, config.LLMConfig{
		GeminiAPIKey: "test-key",
	})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		raw       string
		wantCount int
		wantErr   error
	}{
		{
			name:      "clean array",
			raw:       `[{"question":"What is osmosis?","answer":"Diffusion of water.","difficulty":"Hard"}]`,
			wantCount: 1,
		},
		{
			name: "array surrounded by prose",
			raw: "Sure! Here are your cards:\n" +
				`[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]` +
				"\nLet me know if you need more.",
			wantCount: 2,
		},
		{
			name: "entries missing fields are dropped",
			raw: `[{"question":"Q1","answer":"A1"},` +
				`{"question":"only a question"},` +
				`{"answer":"only an answer"},` +
				`{"question":"Q2","answer":"A2"}]`,
			wantCount: 2,
		},
		{
			name:    "non-JSON garbage",
			raw:     "I could not generate anything useful today.",
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "bracketed but malformed",
			raw:     `[{"question": "unterminated`,
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "empty array",
			raw:     "[]",
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "all entries invalid",
			raw:     `[{"question":"","answer":""},{"hint":"nothing"}]`,
			wantErr: generation.ErrInvalidResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cards, err := parseCards(tc.raw, domain.DifficultyEasy)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, cards)
				return
			}

			require.NoError(t, err)
			require.Len(t, cards, tc.wantCount)
			for _, card := range cards {
				assert.NotEmpty(t, card.Question)
				assert.NotEmpty(t, card.Answer)
			}
		})
	}
}

func TestParseCardsOverwritesDifficulty(t *testing.T) {
	t.Parallel()

	raw := `[{"question":"Q","answer":"A","difficulty":"Hard"},` +
		`{"question":"Q2","answer":"A2","difficulty":"nonsense"}]`

	cards, err := parseCards(raw, domain.DifficultyMedium)

	require.NoError(t, err)
	require.Len(t, cards, 2)
	for _, card := range cards {
		assert.Equal(t, domain.DifficultyMedium, card.Difficulty,
			"the model's own difficulty field is never trusted")
	}
}

func TestParseCardsCapsAtMaxCards(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 15; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"question":"Q","answer":"A"}`)
	}
	sb.WriteString("]")

	cards, err := parseCards(sb.String(), domain.DifficultyEasy)

	require.NoError(t, err)
	assert.Len(t, cards, generation.MaxCards)
}

func TestBuildPromptTruncatesLongText(t *testing.T) {
	t.Parallel()

	g := &Generator{maxPromptRunes: defaultMaxPromptRunes}
	text := strings.Repeat("x", defaultMaxPromptRunes+500)

	prompt, err := g.buildPrompt(text, domain.DifficultyHard)

	require.NoError(t, err)
	assert.Contains(t, prompt, strings.Repeat("x", defaultMaxPromptRunes)+"...")
	assert.NotContains(t, prompt, strings.Repeat("x", defaultMaxPromptRunes+1))
	assert.Contains(t, prompt, `"difficulty": "Hard"`)

	// The embedded text contributes at most the cap plus the marker.
	embedded := utf8.RuneCountInString(prompt) - utf8.RuneCountInString(promptTemplateText)
	assert.LessOrEqual(t, embedded, defaultMaxPromptRunes+3+len("Hard"))
}

func TestBuildPromptKeepsShortTextVerbatim(t *testing.T) {
	t.Parallel()

	g := &Generator{maxPromptRunes: defaultMaxPromptRunes}
	text := "Photosynthesis converts light energy into chemical energy."

	prompt, err := g.buildPrompt(text, domain.DifficultyEasy)

	require.NoError(t, err)
	assert.Contains(t, prompt, "Text: "+text)
	assert.NotContains(t, prompt, text+"...")
}
