package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 30},
		{"?page=3&limit=10", 3, 10},
		{"?page=abc&limit=xyz", 1, 30},
		{"?page=0&limit=0", 1, 30},
		{"?page=-2&limit=500", 1, 500},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/v1/jobs"+tt.query, nil)
		page, limit := GetPaginationParams(r)
		assert.Equal(t, tt.wantPage, page, tt.query)
		assert.Equal(t, tt.wantLimit, limit, tt.query)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 4, TotalPages(31, 10))
}
