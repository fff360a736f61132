// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	RemoteBackend string `env:"REMOTE_BACKEND" envDefault:"dynamodb"`
	PostgresDSN   string `env:"POSTGRES_DSN"`

	AWS    AWSConfig
	Tables TablesConfig

	MirrorPath string `env:"MIRROR_PATH" envDefault:"fieldservice-mirror.db"`

	FreshnessWindow time.Duration `env:"CACHE_FRESHNESS_WINDOW" envDefault:"5m"`
	MaxRetries      int           `env:"RETRY_MAX_RETRIES" envDefault:"3"`
	RetryBaseDelay  time.Duration `env:"RETRY_BASE_DELAY" envDefault:"1s"`

	ProbeURL      string        `env:"CONNECTIVITY_PROBE_URL"`
	ProbeInterval time.Duration `env:"CONNECTIVITY_PROBE_INTERVAL" envDefault:"15s"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile  string     `env:"LOG_FILE"`
}

// AWSConfig is local-friendly: DynamoDB Local ignores the credentials but
// the SDK still requires them.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

// TablesConfig names the remote table of each collection.
type TablesConfig struct {
	Customers string `env:"CUSTOMERS_TABLE" envDefault:"customers"`
	Estimates string `env:"ESTIMATES_TABLE" envDefault:"estimates"`
	Jobs      string `env:"JOBS_TABLE" envDefault:"jobs"`
	Invoices  string `env:"INVOICES_TABLE" envDefault:"invoices"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads settings from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.RemoteBackend = strings.ToLower(strings.TrimSpace(cfg.RemoteBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.RemoteBackend {
	case BackendDynamoDB:
	case BackendPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("%w: POSTGRES_DSN is required for the postgres backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown REMOTE_BACKEND %q", ErrInvalidConfig, c.RemoteBackend)
	}
	if c.FreshnessWindow <= 0 {
		return fmt.Errorf("%w: CACHE_FRESHNESS_WINDOW must be positive", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: RETRY_MAX_RETRIES must not be negative", ErrInvalidConfig)
	}
	if c.RetryBaseDelay <= 0 {
		return fmt.Errorf("%w: RETRY_BASE_DELAY must be positive", ErrInvalidConfig)
	}
	if c.ProbeURL != "" && c.ProbeInterval <= 0 {
		return fmt.Errorf("%w: CONNECTIVITY_PROBE_INTERVAL must be positive", ErrInvalidConfig)
	}
	return nil
}
