// Package pagination implements the skip/limit listing convention used by
// every collection endpoint: skip is an offset (≥ 0), limit is a bounded
// page size, and results are always ordered by primary key so pages are
// stable between requests.
package pagination

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page is the metadata returned alongside a page of results.
type Page struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Clamp normalises a raw skip/limit pair into the allowed window.
func Clamp(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}

// FromRequest reads skip and limit query parameters, falling back to the
// defaults on absent or malformed values.
func FromRequest(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return Clamp(skip, limit)
}

// Scope applies the page window as a gorm scope. Ordering by id gives the
// stable total order the convention requires.
func Scope(skip, limit int) func(*gorm.DB) *gorm.DB {
	skip, limit = Clamp(skip, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id").Offset(skip).Limit(limit)
	}
}
