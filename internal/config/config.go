package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"elenavasquez.com/internal/content"
	"elenavasquez.com/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"ADDR" envDefault:":8080"`
	ContentPath     string        `env:"CONTENT"`
	PublicDir       string        `env:"PUBLIC_DIR" envDefault:"public"`
	Watch           bool          `env:"WATCH"`
	Development     bool          `env:"DEV"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Publish         PublishConfig `envPrefix:"S3_"`
}

// PublishConfig holds the S3 upload settings
type PublishConfig struct {
	Bucket      string `env:"BUCKET"`
	Prefix      string `env:"PREFIX"`
	Region      string `env:"REGION"`
	Endpoint    string `env:"ENDPOINT"`
	PathStyle   bool   `env:"PATH_STYLE"`
	Concurrency int    `env:"CONCURRENCY" envDefault:"8"`
}

// Prefix is prepended to every environment variable name
const Prefix = "PORTFOLIO_"

// Load reads configuration from PORTFOLIO_* environment variables
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads configuration from the given environment, or the process
// environment when environ is nil
func LoadFrom(environ map[string]string) (*Config, error) {
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// LoadSite loads the site content named by ContentPath
func (c *Config) LoadSite() (*models.Site, error) {
	return content.Load(c.ContentPath)
}
