// Package controllers holds the HTTP layer: decode the request, call the
// service, translate the outcome. No business rules live here.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID reads a numeric {id} path parameter. ok is false for anything that
// is not a positive integer.
func pathID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// queryUint reads an optional numeric query parameter; absent or malformed
// values come back as zero.
func queryUint(r *http.Request, key string) uint {
	n, _ := strconv.ParseUint(r.URL.Query().Get(key), 10, 32)
	return uint(n)
}

// queryBool reads a boolean query flag; only "true" and "1" count.
func queryBool(r *http.Request, key string) bool {
	v := r.URL.Query().Get(key)
	return v == "true" || v == "1"
}
