// Copyright (c) 2026 Daleel Balady. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/daleelbalady/daleel/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Daleel services.
//
// The same struct serves both binaries: cmd/api reads the server settings,
// cmd/importer reads the import settings, and both share the store settings.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL"`

	// Import settings
	// DatasetPath points at the JSON document to ingest.
	DatasetPath string `env:"DATASET_PATH" envDefault:"./data.json"`
	// ErrorLogPath is the append-only failure log, truncated per run.
	ErrorLogPath string `env:"ERROR_LOG_PATH" envDefault:"import-errors.log"`
	// DryRun routes the import at an in-memory store instead of PostgreSQL.
	DryRun bool `env:"DRY_RUN" envDefault:"false"`

	// Cross-Origin Resource Sharing
	// ExtraOrigins is a comma-separated list of origins allowed alongside
	// the production domain (staging frontends, preview deployments).
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the service is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedExtraOrigins returns the additional CORS origins from
// [Config.ExtraOrigins], split and trimmed.
func (c *Config) AllowedExtraOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
