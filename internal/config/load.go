package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and, when
// present, a config.yaml in the working directory. Environment
// variables take the CARDGEN_ prefix with dots replaced by underscores
// (e.g. CARDGEN_SERVER_PORT) and take precedence over file values.
// Returns a populated, validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the service runnable with zero configuration; the
	// generative capability stays off until an API key is supplied.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.models", []string{
		"gemini-2.0-flash",
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
	})
	v.SetDefault("llm.max_prompt_chars", 1200)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CARDGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
