package config

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// StoreConfig selects where decks and scores are kept.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"      validate:"required,oneof=memory redis postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres,omitempty,url"`
	RedisAddr   string `mapstructure:"redis_addr"   validate:"required_if=Backend redis,omitempty,hostname_port"`
	RedisDB     int    `mapstructure:"redis_db"     validate:"gte=0"`
}

// LLMConfig contains the deck generation settings. An empty API key disables generation.
type LLMConfig struct {
	GeminiAPIKey       string `mapstructure:"gemini_api_key"`
	ModelName          string `mapstructure:"model_name"           validate:"required_with=GeminiAPIKey"`
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
	MaxRetries         int    `mapstructure:"max_retries"          validate:"gte=0,lte=10"`
	RetryDelaySeconds  int    `mapstructure:"retry_delay_seconds"  validate:"gte=1,lte=60"`
}

// GenerationEnabled reports whether an LLM API key was configured.
func (c LLMConfig) GenerationEnabled() bool {
	return c.GeminiAPIKey != ""
}
