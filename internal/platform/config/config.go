// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into strongly typed
structs. A '.env' file in the working directory, when present, is loaded first
so local development does not need exported variables.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// CategoryCacheTTL bounds how long the category option list is served from Redis.
	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"10m"`

	// Token verification. The private key is optional and only needed to mint tokens.
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`

	// AllowedOriginSuffix is the trusted dashboard origin in production.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"coursedesk.app"`
}

// DashboardConfig holds the settings of the dashboard API client.
type DashboardConfig struct {
	// APIURL is the base URL the widgets call, e.g. "https://coursedesk.app/api".
	APIURL string `env:"DASHBOARD_API_URL" envDefault:"http://localhost:8080/api"`

	// Timeout bounds each widget request. Zero disables the client timeout.
	Timeout time.Duration `env:"DASHBOARD_TIMEOUT" envDefault:"0s"`

	// AccessToken is sent as a bearer token when non-empty.
	AccessToken string `env:"DASHBOARD_ACCESS_TOKEN"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// LoadDashboard parses the dashboard client settings.
func LoadDashboard() (*DashboardConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &DashboardConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse dashboard variables: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads ./.env if it exists. Variables already set in the
// process environment take precedence.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to read .env: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TrustedOriginSuffix returns the origin suffix accepted by CORS outside development.
func (c *Config) TrustedOriginSuffix() string {
	return c.AllowedOriginSuffix
}
