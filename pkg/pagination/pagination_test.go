// Copyright (c) 2026 Fondren Library. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fondrenlibrary/name-authority/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 25},
		{"explicit", "page=3&limit=50", 3, 50},
		{"negative_page", "page=-1", 1, 25},
		{"zero_limit", "limit=0", 1, 25},
		{"excessive_limit", "limit=5000", 1, 25},
		{"garbage", "page=abc&limit=xyz", 1, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/names?"+tt.query, nil)
			p := pagination.FromRequest(r)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 25}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, Limit: 25}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 25, 51)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 51, meta.Total)

	assert.Equal(t, 0, pagination.NewMeta(1, 0, 10).TotalPages)
}
