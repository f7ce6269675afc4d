package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// envConfig holds the settings that may come from the environment.
// Empty values leave the file configuration untouched.
type envConfig struct {
	APIURL   string `env:"TASKDECK_API_URL"`
	LogLevel string `env:"TASKDECK_LOG_LEVEL"`
}

// applyEnv loads an optional .env file from the working directory and lets
// environment variables override file values.
func applyEnv(cfg *Config) error {
	_ = godotenv.Load(".env")

	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.APIURL != "" {
		cfg.APIURL = env.APIURL
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	return nil
}
