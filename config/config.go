/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GRIDSEARCH_SERVER_PORT.
const EnvPrefix = "GRIDSEARCH"

var validate = validator.New()

// Config holds all configuration for the service
type Config struct {
	Log            LogConfig            `mapstructure:"log"`
	Server         ServerConfig         `mapstructure:"server"`
	Catalogs       CatalogsConfig       `mapstructure:"catalogs"`
	DynamoDB       DynamoDBConfig       `mapstructure:"dynamodb"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	Mode string `mapstructure:"mode" validate:"oneof=debug release test"` // gin mode
}

// CatalogsConfig controls which attribute catalogs are served
type CatalogsConfig struct {
	// File is an optional YAML file of extra catalog definitions.
	File string `mapstructure:"file"`
	// NotFoundStatus is the HTTP status for unknown index names.
	NotFoundStatus int `mapstructure:"not_found_status" validate:"oneof=400 404"`
}

// DynamoDBConfig holds the catalog table settings
type DynamoDBConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Region    string   `mapstructure:"region" validate:"required_if=Enabled true"`
	Table     string   `mapstructure:"table" validate:"required_if=Enabled true"`
	AccessKey string   `mapstructure:"access_key"`
	SecretKey string   `mapstructure:"secret_key" validate:"required_with=AccessKey"`
	Endpoint  string   `mapstructure:"endpoint" validate:"omitempty,url"`
	Catalogs  []string `mapstructure:"catalogs" validate:"dive,required"`
}

// CircuitBreakerConfig holds settings for the breaker around the catalog table
type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests" validate:"min=1"`
	Interval         int     `mapstructure:"interval"` // in seconds
	Timeout          int     `mapstructure:"timeout"`  // in seconds
	ReadyToTripRatio float64 `mapstructure:"ready_to_trip_ratio" validate:"gt=0,lte=1"`
}

// IntervalDuration returns Interval as a time.Duration.
func (c CircuitBreakerConfig) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c CircuitBreakerConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// New returns a viper instance with defaults and environment overrides bound.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("catalogs.file", "")
	v.SetDefault("catalogs.not_found_status", 400)

	v.SetDefault("dynamodb.enabled", false)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.table", "")
	v.SetDefault("dynamodb.access_key", "")
	v.SetDefault("dynamodb.secret_key", "")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.catalogs", []string{})

	v.SetDefault("circuit_breaker.max_requests", 1)
	v.SetDefault("circuit_breaker.interval", 60)
	v.SetDefault("circuit_breaker.timeout", 30)
	v.SetDefault("circuit_breaker.ready_to_trip_ratio", 0.6)
}

// Load reads configuration from an optional .env file, an optional config file and
// GRIDSEARCH_* environment variables, in increasing precedence.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tag constraints of cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
