package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Allowlist AllowlistConfig `mapstructure:"allowlist"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AllowlistConfig controls how the registration allowlist is seeded at
// startup. BootstrapEmails is a comma-separated list; each entry is added
// idempotently so restarts never fail on already-present emails.
type AllowlistConfig struct {
	BootstrapEmails string `mapstructure:"bootstrap_emails"`
}

// LLMConfig contains all Gemini integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName is the default model for generation requests.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// LessonPlanModel, when set, overrides ModelName for lesson plans,
	// which benefit from a stronger model.
	LessonPlanModel string `mapstructure:"lesson_plan_model"`

	// MaxRetries is how many times a transient API failure is retried.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}
