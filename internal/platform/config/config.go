// Copyright (c) 2026 Creata. All rights reserved.

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
)

// Storage backend selectors for the entity access layer.
const (
	// StorageBackendPostgres wires the real relational store.
	StorageBackendPostgres = "postgres"

	// StorageBackendMemory wires the seeded in-memory dataset. Intended for
	// demos and local development without a database.
	StorageBackendMemory = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration for the Creata API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StorageBackend selects the entity access implementation:
	// "postgres" (default) or "memory" (seeded mock dataset).
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`

	// Relational Database (PostgreSQL). Required unless STORAGE_BACKEND=memory.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional in memory mode.
	RedisURL string `env:"REDIS_URL"`

	// Cryptographic keys for identity signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces cross-field requirements that env tags cannot express.
func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required when STORAGE_BACKEND=postgres")
		}
	case StorageBackendMemory:
		// Self-contained; no external services required.
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	return nil
}

// UsesMemoryBackend reports whether the seeded in-memory dataset is active.
func (c *Config) UsesMemoryBackend() bool {
	return c.StorageBackend == StorageBackendMemory
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
