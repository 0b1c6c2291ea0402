package helpers

import (
	"math"
	"strconv"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
	MaxPage         = 1_000_000
)

// PageRequest is a normalized page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page to [1, MaxPage] and limit to (0, MaxPageSize]; a non-positive limit means the default.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

// NewPaginationInfo creates the pagination block returned with every list.
func NewPaginationInfo(totalItems int64, p PageRequest) *dto.PaginationInfo {
	p = NewPageRequest(p.Page, p.Limit)

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(p.Limit)))
	}

	return &dto.PaginationInfo{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: p.Limit,
		HasNextPage:  p.Page < totalPages,
		HasPrevPage:  p.Page > 1,
	}
}

// ParsePaginationParams extracts page and limit (or its alias size) from the query string
func ParsePaginationParams(c *gin.Context) PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = DefaultPage
	}

	limitStr := c.Query("limit")
	if limitStr == "" {
		limitStr = c.Query("size")
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = DefaultPageSize
	}

	return NewPageRequest(page, limit)
}
