/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 400, cfg.Catalogs.NotFoundStatus)
	assert.False(t, cfg.DynamoDB.Enabled)
	assert.Equal(t, uint32(1), cfg.CircuitBreaker.MaxRequests)
	assert.Equal(t, 60*time.Second, cfg.CircuitBreaker.IntervalDuration())
	assert.Equal(t, 30*time.Second, cfg.CircuitBreaker.TimeoutDuration())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridsearch.yaml")
	body := `
log:
  level: debug
  format: json
server:
  port: 9090
catalogs:
  file: /etc/gridsearch/catalogs.yaml
  not_found_status: 404
dynamodb:
  enabled: true
  region: us-west-2
  table: grid-search
  catalogs:
    - samples
    - runs
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "/etc/gridsearch/catalogs.yaml", cfg.Catalogs.File)
	assert.Equal(t, 404, cfg.Catalogs.NotFoundStatus)
	assert.True(t, cfg.DynamoDB.Enabled)
	assert.Equal(t, "grid-search", cfg.DynamoDB.Table)
	assert.Equal(t, []string{"samples", "runs"}, cfg.DynamoDB.Catalogs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRIDSEARCH_SERVER_PORT", "7070")
	t.Setenv("GRIDSEARCH_LOG_LEVEL", "warn")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad not found status", func(c *Config) { c.Catalogs.NotFoundStatus = 500 }},
		{"dynamodb without table", func(c *Config) { c.DynamoDB.Enabled = true }},
		{"access key without secret", func(c *Config) { c.DynamoDB.AccessKey = "AKIA" }},
		{"bad endpoint", func(c *Config) { c.DynamoDB.Endpoint = "not a url" }},
		{"empty catalog name", func(c *Config) { c.DynamoDB.Catalogs = []string{""} }},
		{"bad trip ratio", func(c *Config) { c.CircuitBreaker.ReadyToTripRatio = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}

	t.Run("valid dynamodb", func(t *testing.T) {
		cfg := valid()
		cfg.DynamoDB.Enabled = true
		cfg.DynamoDB.Table = "grid-search"
		cfg.DynamoDB.Endpoint = "http://localhost:8000"
		assert.NoError(t, Validate(cfg))
	})
}
