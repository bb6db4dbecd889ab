package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the optional generative backend.
// An empty API key means the capability is absent and the service runs
// on the heuristic path only.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Optional.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// Models is the ordered preference list of model names, tried in
	// sequence until one produces a usable result.
	Models []string `mapstructure:"models" validate:"required,min=1"`

	// MaxPromptChars bounds how much source text a prompt embeds.
	MaxPromptChars int `mapstructure:"max_prompt_chars" validate:"required,gt=0"`
}
