// Copyright (c) 2026 Fondren Library. All rights reserved.

/*
Package geocode wraps the outbound maps geocoding API.

The Name save path uses it to enrich newly created Building records with
a location. Lookups are best-effort by contract: every failure mode —
network error, malformed body, ambiguous result set — is reported as a
soft miss so the caller can skip enrichment without failing the save.

Responses are cached in Redis keyed by the normalized query, so repeated
saves of the same heading do not re-hit the third-party endpoint.
*/
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/fondrenlibrary/name-authority/internal/platform/constants"
)

// maxResponseBytes bounds how much of a geocoder response we will read.
const maxResponseBytes = 1 << 20

// Match is an unambiguous geocoding result.
type Match struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

// Client performs address lookups against a Google-style geocoding endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	cache      *redis.Client
	logger     *slog.Logger
}

// NewClient constructs a geocoding client.
//
// The cache may be nil, in which case every lookup goes to the network.
func NewClient(endpoint, apiKey string, cache *redis.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: constants.GeocodeRequestTimeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
		cache:      cache,
		logger:     logger,
	}
}

// response mirrors the subset of the geocoder's JSON body we consume.
type response struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat json.Number `json:"lat"`
				Lng json.Number `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Lookup geocodes a free-text address query.
//
// It returns a non-nil *Match only when the geocoder answers status "OK"
// with exactly one result. Zero results, multiple results, and transport
// or parse failures all return (nil, nil) after logging — per the save
// contract, enrichment must never fail a Name save.
func (client *Client) Lookup(ctx context.Context, query string) (*Match, error) {
	body, err := client.fetch(ctx, query)
	if err != nil {
		client.logger.Warn("geocode_lookup_failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil, nil
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		client.logger.Warn("geocode_response_malformed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil, nil
	}

	if parsed.Status != "OK" || len(parsed.Results) != 1 {
		client.logger.Info("geocode_no_unambiguous_match",
			slog.String("query", query),
			slog.String("status", parsed.Status),
			slog.Int("result_count", len(parsed.Results)),
		)
		return nil, nil
	}

	location := parsed.Results[0].Geometry.Location
	latitude, latErr := decimal.NewFromString(location.Lat.String())
	longitude, lngErr := decimal.NewFromString(location.Lng.String())
	if latErr != nil || lngErr != nil {
		client.logger.Warn("geocode_coordinates_malformed", slog.String("query", query))
		return nil, nil
	}

	return &Match{Latitude: latitude, Longitude: longitude}, nil
}

// fetch returns the raw response body for a query, consulting the cache
// first and populating it on a network hit.
func (client *Client) fetch(ctx context.Context, query string) ([]byte, error) {
	cacheKey := constants.RedisPrefixGeocode + query

	if client.cache != nil {
		cached, err := client.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			// Cache trouble is not lookup trouble; fall through to the network.
			client.logger.Warn("geocode_cache_read_failed", slog.Any("error", err))
		}
	}

	requestURL, err := client.buildURL(query)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	httpResponse, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", httpResponse.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(httpResponse.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	if client.cache != nil {
		setCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.cache.Set(setCtx, cacheKey, body, constants.GeocodeCacheTTL).Err(); err != nil {
			client.logger.Warn("geocode_cache_write_failed", slog.Any("error", err))
		}
	}

	return body, nil
}

func (client *Client) buildURL(query string) (string, error) {
	parsed, err := url.Parse(client.endpoint)
	if err != nil {
		return "", fmt.Errorf("geocode: invalid endpoint: %w", err)
	}

	values := parsed.Query()
	values.Set("address", query)
	if client.apiKey != "" {
		values.Set("key", client.apiKey)
	}
	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}
