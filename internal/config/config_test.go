package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-campaign-api/internal/config"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
	assert.Equal(t, "rpg:notifications", cfg.NotifyChannel)
	assert.Equal(t, 10, cfg.InitiativeDie)
	assert.Empty(t, cfg.OTelEndpoint)
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"RPG_GRPC_PORT":      "6000",
		"RPG_STORAGE":        "sqlite",
		"RPG_SQLITE_PATH":    "/tmp/combat.db",
		"RPG_LOG_FORMAT":     "json",
		"RPG_LOG_LEVEL":      "debug",
		"RPG_OTEL_ENDPOINT":  "http://localhost:4318",
		"RPG_INITIATIVE_DIE": "12",
	})
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, config.StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/combat.db", cfg.SQLitePath)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, "http://localhost:4318", cfg.OTelEndpoint)
	assert.Equal(t, 12, cfg.InitiativeDie)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "unknown storage", env: map[string]string{"RPG_STORAGE": "postgres"}, field: "storage"},
		{name: "bad log format", env: map[string]string{"RPG_LOG_FORMAT": "xml"}, field: "log_format"},
		{name: "port out of range", env: map[string]string{"RPG_GRPC_PORT": "70000"}, field: "grpc_port"},
		{name: "one sided die", env: map[string]string{"RPG_INITIATIVE_DIE": "1"}, field: "initiative_die"},
		{name: "redis without address", env: map[string]string{"RPG_STORAGE": "redis", "RPG_REDIS_ADDR": " "}, field: "redis_addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(tt.env)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadRejectsUnparseableValues(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"RPG_HTTP_PORT": "eighty"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
