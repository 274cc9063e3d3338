package store

import "strings"

const (
	// DefaultLimit is applied when the caller does not request a page size.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller requests.
	MaxLimit = 100

	// DefaultSort is newest-first; a leading '-' marks descending order.
	DefaultSort = "-createdAt"
)

// ListOptions control pagination and ordering for FindAll.
// Sort is a field name, optionally prefixed with '-' for descending order.
type ListOptions struct {
	Page  int
	Limit int
	Sort  string
}

// normalize applies defaults and clamps values.
func (o *ListOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if strings.TrimSpace(o.Sort) == "" {
		o.Sort = DefaultSort
	}
}

// offset returns the number of rows to skip for the current page.
func (o ListOptions) offset() int {
	return (o.Page - 1) * o.Limit
}

// Pagination describes the page that was returned.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// List is a single page of records plus pagination metadata.
type List[T any] struct {
	Items      []*T
	Pagination Pagination
}

// pages computes ceil(total/limit).
func pages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
