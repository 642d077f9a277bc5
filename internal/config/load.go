package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FLASHDECK_SERVER_PORT.
const EnvPrefix = "FLASHDECK"

// defaults lists every known key. Viper only resolves environment variables
// for keys it knows about, so secrets are registered here with empty values.
var defaults = map[string]any{
	"server.port":                     8088,
	"server.log_level":                "info",
	"server.shutdown_timeout_seconds": 10,
	"store.backend":                   BackendMemory,
	"store.database_url":              "",
	"store.redis_addr":                "",
	"store.redis_db":                  0,
	"llm.gemini_api_key":              "",
	"llm.model_name":                  "gemini-2.0-flash",
	"llm.prompt_template_path":        "",
	"llm.max_retries":                 3,
	"llm.retry_delay_seconds":         2,
}

// Load reads configuration from an optional config.yaml (in the working
// directory or /etc/flashdeck) and from FLASHDECK_* environment variables.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/flashdeck")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
