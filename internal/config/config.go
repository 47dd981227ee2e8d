package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerAddr     string   `envconfig:"SERVER_ADDR" default:"localhost:8000"`
	MongoURI       string   `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase  string   `envconfig:"MONGO_DATABASE" default:"whiteboard"`
	CloudinaryURL  string   `envconfig:"CLOUDINARY_URL"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
	UploadDir      string   `envconfig:"UPLOAD_DIR"`
}

// Load reads WHITEBOARD_-prefixed environment variables into a Config
// and validates it. Empty flag-style overrides keep the env value.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("whiteboard", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("mongo URI cannot be empty")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("mongo database cannot be empty")
	}
	if c.CloudinaryURL == "" {
		return fmt.Errorf("cloudinary URL cannot be empty")
	}

	return nil
}
