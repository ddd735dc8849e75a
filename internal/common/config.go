package common

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Redis    RedisConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration. Driver "postgres" uses
// a pgx pool; "sqlite" opens a local file for development.
type DatabaseConfig struct {
	Driver           string        `env:"DB_DRIVER" envDefault:"postgres"`
	DSN              string        `env:"DB_URL"`
	MaxConns         int32         `env:"DB_MAX_CONNS" envDefault:"20"`
	MinConns         int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	MaxConnLifetime  time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	MaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DialTimeout      time.Duration `env:"DB_DIAL_TIMEOUT" envDefault:"3s"`
	StatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT" envDefault:"0"`
}

// ServerConfig holds the listen addresses for the gRPC API and the webhook
// HTTP server.
type ServerConfig struct {
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":8080"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`
}

// RedisConfig configures the inbound-email dedupe store.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DedupTTL time.Duration `env:"EMAIL_DEDUPE_TTL" envDefault:"168h"`
}

// IngestConfig holds email/PDF pipeline settings.
type IngestConfig struct {
	AttachmentDir  string        `env:"ATTACHMENT_DIR" envDefault:"./attachments"`
	PdftotextPath  string        `env:"PDFTOTEXT_PATH" envDefault:"pdftotext"`
	Workers        int           `env:"INGEST_WORKERS" envDefault:"4"`
	QueueSize      int           `env:"INGEST_QUEUE_SIZE" envDefault:"256"`
	ProcessTimeout time.Duration `env:"INGEST_PROCESS_TIMEOUT" envDefault:"2m"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("%w: DB_URL is required", ErrInvalidInput)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("%w: DB_DRIVER must be postgres or sqlite", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" || c.Server.HTTPAddr == "" {
		return fmt.Errorf("%w: GRPC_ADDR and HTTP_ADDR are required", ErrInvalidInput)
	}
	return nil
}
