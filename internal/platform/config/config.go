// Copyright (c) 2026 Fondren Library. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a
strongly-typed Go struct, providing early validation and default values.

Architecture:

  - Immutability: once loaded, configuration is read-only.
  - DI-friendly: passed to core components (DB, Redis, geocoder) via
    constructors.
  - Zero hidden state: no global variables store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the name authority API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis) — geocoder response cache
	RedisURL string `env:"REDIS_URL,required"`

	// Geocoding endpoint; queried with ?address=<normalized name>.
	GeocodeEndpoint string `env:"GEOCODE_ENDPOINT" envDefault:"https://maps.googleapis.com/maps/api/geocode/json"`
	GeocodeAPIKey   string `env:"GEOCODE_API_KEY"`

	// Operator session signing
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Operator accounts. Password values are bcrypt hashes, never plain
	// text. The editor account is optional.
	AdminUsername      string `env:"ADMIN_USERNAME,required"`
	AdminPasswordHash  string `env:"ADMIN_PASSWORD_HASH,required"`
	EditorUsername     string `env:"EDITOR_USERNAME"`
	EditorPasswordHash string `env:"EDITOR_PASSWORD_HASH"`

	// Cross-Origin Resource Sharing: origins ending in this suffix are
	// allowed in production.
	CORSOriginSuffix string `env:"CORS_ORIGIN_SUFFIX"`
}

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOriginSuffix implements the middleware CORS configuration surface.
func (c *Config) AllowedOriginSuffix() string {
	return c.CORSOriginSuffix
}
