package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination is the "pagination" object of list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"`
}

// Paging is the offset/limit window derived from ?page= and ?per_page=.
type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging clamps page to >= 1 and per_page to (0, maxPerPage];
// maxPerPage 0 means unbounded. Bad numbers fall back to the defaults.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.Query("per_page"))
	if err != nil || perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return Paging{Page: page, PerPage: perPage, Offset: (page - 1) * perPage, Limit: perPage}
}

// BuildPaginationFromOffset describes the window [offset, offset+limit) over
// total rows; count is the number of rows actually returned.
func BuildPaginationFromOffset(total int64, offset, limit, count int) Pagination {
	if limit <= 0 {
		limit = 20
	}
	page := offset/limit + 1
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages == 0 {
		pages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
		Count:      count,
	}
}
