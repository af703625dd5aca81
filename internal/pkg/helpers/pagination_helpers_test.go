package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPageLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 25},
		{"negative values", -3, -1, 1, 25},
		{"limit capped at maximum", 1, 500, 1, 100},
		{"valid values untouched", 2, 10, 2, 10},
		{"limit at maximum kept", 1, 100, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPageLimit(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(2, 10)
	assert.Equal(t, uint64(10), offset)
	assert.Equal(t, 10, limit)

	offset, _ = CalculateOffsetLimit(1, 25)
	assert.Equal(t, uint64(0), offset)
}

func TestNewPaginationInfo(t *testing.T) {
	// 25 items at 10 per page need 3 pages
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 10, info.Limit)
	assert.Equal(t, int64(25), info.Total)
	assert.Equal(t, 3, info.TotalPages)

	empty := NewPaginationInfo(0, 1, 25)
	assert.Equal(t, 0, empty.TotalPages)
}
