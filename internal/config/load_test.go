package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyforge/cardgen-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Empty(t, cfg.LLM.GeminiAPIKey, "capability is off by default")
	assert.Equal(t, 1200, cfg.LLM.MaxPromptChars)
	require.NotEmpty(t, cfg.LLM.Models)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Models[0],
		"preference order must start with the primary model")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CARDGEN_SERVER_PORT", "9000")
	t.Setenv("CARDGEN_SERVER_LOG_LEVEL", "debug")
	t.Setenv("CARDGEN_LLM_GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "CARDGEN_SERVER_PORT", value: "70000"},
		{name: "unknown log level", key: "CARDGEN_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "non-positive prompt cap", key: "CARDGEN_LLM_MAX_PROMPT_CHARS", value: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
