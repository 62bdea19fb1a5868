package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		skip, limit         int
		wantSkip, wantLimit int
	}{
		{0, 0, 0, DefaultLimit},
		{-5, -1, 0, DefaultLimit},
		{10, 50, 10, 50},
		{0, MaxLimit + 1, 0, MaxLimit},
	}

	for _, c := range cases {
		skip, limit := Clamp(c.skip, c.limit)
		assert.Equal(t, c.wantSkip, skip)
		assert.Equal(t, c.wantLimit, limit)
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/clients?skip=20&limit=10", nil)
	skip, limit := FromRequest(r)
	assert.Equal(t, 20, skip)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest("GET", "/api/v1/clients?skip=abc&limit=", nil)
	skip, limit = FromRequest(r)
	assert.Equal(t, 0, skip)
	assert.Equal(t, DefaultLimit, limit)
}
