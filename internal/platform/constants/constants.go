// Copyright (c) 2026 Fondren Library. All rights reserved.

/*
Package constants provides centralized, immutable values for the platform.

It defines default timeouts, rate limits, and cross-cutting keys shared
between layers, keeping magic numbers out of the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "name-authority-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// The geocode side effect runs inside this window, so it must stay
	// comfortably above the geocoder's own timeout.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often idle IP entries are evicted.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before eviction.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in operator JWTs.
	AuthIssuer = "name.library.example.edu"

	// AccessTokenTTL bounds how long an operator session token is valid.
	AccessTokenTTL = 8 * time.Hour

	// DummyPasswordHash is compared against when the username is unknown,
	// keeping login timing uniform across failure paths.
	DummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Redis Prefixes

const (
	// RedisPrefixGeocode keys cached geocoder responses by normalized query.
	RedisPrefixGeocode = "geocode:"
)

// # Geocoding

const (
	// GeocodeCacheTTL is how long a geocoder response stays cached.
	GeocodeCacheTTL = 7 * 24 * time.Hour

	// GeocodeRequestTimeout bounds the outbound maps API call.
	GeocodeRequestTimeout = 5 * time.Second
)
