// Copyright (c) 2026 Fondren Library. All rights reserved.

package geocode_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/platform/geocode"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

/*
TestLookup_SingleMatch verifies that exactly one OK result yields a match
with the returned coordinates.
*/
func TestLookup_SingleMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Willis Library", r.URL.Query().Get("address"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 33.2102126, "lng": -97.1488534}}}
			]
		}`))
	}))
	defer server.Close()

	client := geocode.NewClient(server.URL, "", nil, testLogger())
	match, err := client.Lookup(context.Background(), "Willis Library")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "33.2102126", match.Latitude.String())
	assert.Equal(t, "-97.1488534", match.Longitude.String())
}

/*
TestLookup_SoftMisses verifies that every non-unambiguous outcome is a
soft miss: nil match, nil error.
*/
func TestLookup_SoftMisses(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"zero_results", `{"status": "ZERO_RESULTS", "results": []}`, 200},
		{"multiple_results", `{"status": "OK", "results": [
			{"geometry": {"location": {"lat": 1.0, "lng": 2.0}}},
			{"geometry": {"location": {"lat": 3.0, "lng": 4.0}}}
		]}`, 200},
		{"ok_but_empty", `{"status": "OK", "results": []}`, 200},
		{"malformed_json", `{"status": "OK", "results": [`, 200},
		{"server_error", `boom`, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := geocode.NewClient(server.URL, "", nil, testLogger())
			match, err := client.Lookup(context.Background(), "Some Building")

			assert.NoError(t, err)
			assert.Nil(t, match)
		})
	}
}

/*
TestLookup_NetworkFailure verifies that an unreachable endpoint is also a
soft miss.
*/
func TestLookup_NetworkFailure(t *testing.T) {
	client := geocode.NewClient("http://127.0.0.1:1", "", nil, testLogger())
	match, err := client.Lookup(context.Background(), "Some Building")

	assert.NoError(t, err)
	assert.Nil(t, match)
}
