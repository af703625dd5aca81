package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models/dto"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
	DefaultPage  = 1
)

// ClampPageLimit normalizes arbitrary page/limit values to their valid ranges.
// Malformed or out-of-range values are clamped, never rejected.
func ClampPageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// ParsePaginationParams extracts and clamps pagination parameters from the request.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		limit = DefaultLimit
	}

	return ClampPageLimit(page, limit)
}

// CalculateOffsetLimit converts a 1-based page number to a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset uint64, clampedLimit int) {
	page, clampedLimit = ClampPageLimit(page, limit)
	offset = uint64((page - 1) * clampedLimit)
	return offset, clampedLimit
}

// NewPaginationInfo creates a standard PaginationInfo DTO from a 1-based page number.
func NewPaginationInfo(totalItems int64, page, limit int) dto.PaginationInfo {
	page, limit = ClampPageLimit(page, limit)

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      totalItems,
		TotalPages: totalPages,
	}
}
