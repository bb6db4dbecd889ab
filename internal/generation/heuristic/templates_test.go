package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studyforge/cardgen-api/internal/domain"
)

func TestTemplateTiersHaveExactlyOneSlot(t *testing.T) {
	t.Parallel()

	tiers := map[string][10]string{
		"easy":   easyTemplates,
		"medium": mediumTemplates,
		"hard":   hardTemplates,
	}

	for name, tier := range tiers {
		for i, tmpl := range tier {
			assert.Equal(t, 1, strings.Count(tmpl, "%s"),
				"%s template %d must carry exactly one key-term slot", name, i)
		}
	}

	for i, q := range fallbackQuestions {
		assert.NotContains(t, q, "%s", "fallback question %d must not have a slot", i)
	}
	for i, q := range sectionQuestions {
		assert.NotContains(t, q, "%s", "section question %d must not have a slot", i)
	}
}

func TestTemplateSelectionWrapsModuloTen(t *testing.T) {
	t.Parallel()

	tier := questionTemplates(domain.DifficultyEasy)

	// The eleventh unit reuses the first template rather than running out.
	assert.Equal(t, tier[0], tier[10%len(tier)])
	assert.Equal(t, tier[3], tier[13%len(tier)])
}

func TestQuestionTemplatesTierSelection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, easyTemplates, questionTemplates(domain.DifficultyEasy))
	assert.Equal(t, mediumTemplates, questionTemplates(domain.DifficultyMedium))
	assert.Equal(t, hardTemplates, questionTemplates(domain.DifficultyHard))

	// Unrecognized levels land on the hard tier.
	assert.Equal(t, hardTemplates, questionTemplates(domain.Difficulty("expert")))
}
