package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/streamstats/internal/adapters/otel"
)

// Prefix is prepended to every environment variable name.
const Prefix = "STREAMSTATS"

// Log holds logger configuration.
type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Pretty bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// Server holds configuration for the web dashboard.
type Server struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	MaxUploadMB     int64         `envconfig:"MAX_UPLOAD_MB" default:"32"`
	PreviewRows     int           `envconfig:"PREVIEW_ROWS" default:"5"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Config is the full process configuration.
type Config struct {
	Log    Log
	Server Server
	OTEL   otel.Config
}

// MaxUploadBytes returns the upload limit in bytes.
func (s Server) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg.Log); err != nil {
		return nil, err
	}
	if err := envconfig.Process(Prefix, &cfg.Server); err != nil {
		return nil, err
	}
	if err := envconfig.Process(Prefix+"_OTEL", &cfg.OTEL); err != nil {
		return nil, err
	}
	if err := cfg.Server.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s Server) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port: %d", s.Port)
	}
	if s.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid upload limit: %d MB", s.MaxUploadMB)
	}
	if s.PreviewRows < 0 {
		return fmt.Errorf("invalid preview rows: %d", s.PreviewRows)
	}
	return nil
}
