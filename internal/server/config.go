package server

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/thenoetrevino/taskdeck/internal/config"
)

// Config is read from the environment (and an optional .env file)
type Config struct {
	Addr      string        `env:"TASKDECK_ADDR" env-default:":5000"`
	DBPath    string        `env:"TASKDECK_DB_PATH"`
	JWTSecret string        `env:"TASKDECK_JWT_SECRET"`
	TokenTTL  time.Duration `env:"TASKDECK_TOKEN_TTL" env-default:"24h"`
	LogLevel  string        `env:"TASKDECK_LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads the server configuration and fills derived defaults
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.DBPath == "" {
		dir, err := config.DataDir()
		if err != nil {
			return fmt.Errorf("failed to resolve data directory: %w", err)
		}
		c.DBPath = filepath.Join(dir, "server.db")
	}
	if c.JWTSecret == "" {
		slog.Warn("TASKDECK_JWT_SECRET not set; tokens will not survive a restart")
		c.JWTSecret = uuid.NewString()
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 24 * time.Hour
	}
	return nil
}
