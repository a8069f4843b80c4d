// Package config loads server settings from the environment
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every server setting. Fields are read from RPG_* variables
// and may be overridden by command line flags.
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`
	// HTTPPort 0 disables the HTTP API and live feed
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	Storage    string `env:"STORAGE" envDefault:"memory"`
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"rpg-campaign.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE"`

	// NotifyChannel is the Redis channel notifications are published on
	// when Storage is redis
	NotifyChannel string `env:"NOTIFY_CHANNEL" envDefault:"rpg:notifications"`
	OTelEndpoint  string `env:"OTEL_ENDPOINT"`

	InitiativeDie int `env:"INITIATIVE_DIE" envDefault:"10"`
}

// Load parses the RPG_* environment into a validated Config
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load reading from environment instead of the process
// environment when it is non-nil
func LoadFrom(environment map[string]string) (*Config, error) {
	opts := env.Options{Prefix: "RPG_"}
	if environment != nil {
		opts.Environment = environment
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("http_port", c.HTTPPort, 0, 65535, vb)
	errors.ValidateEnum("storage", c.Storage, []string{StorageMemory, StorageRedis, StorageSQLite}, vb)
	errors.ValidateEnum("log_format", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	errors.ValidateEnum("log_level", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateMin("initiative_die", c.InitiativeDie, 2, vb)

	switch c.Storage {
	case StorageRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StorageSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	}

	return vb.Build()
}
