package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DB_PATH" envDefault:"data/issuedesk.db"`
	SecretKey    string `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	CookieSecure bool   `env:"COOKIE_SECURE"`

	// Avatars land on local disk unless object storage is configured.
	AvatarDir string `env:"AVATAR_DIR" envDefault:"data/avatars"`

	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3AccessKeyID   string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey     string `env:"S3_SECRET_ACCESS_KEY"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	S3UseSSL        bool   `env:"S3_USE_SSL"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// Load reads configuration from the environment, taking a local .env file
// into account when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) S3Configured() bool {
	return cfg.S3Endpoint != "" && cfg.S3AccessKeyID != "" && cfg.S3SecretKey != "" && cfg.S3Bucket != ""
}
