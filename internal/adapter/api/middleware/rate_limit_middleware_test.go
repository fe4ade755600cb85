package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareheart/internal/infrastructure/ratelimit"
)

func TestRateLimitPerUser(t *testing.T) {
	limiter := ratelimit.NewRateLimiter(map[string]ratelimit.Policy{
		ratelimit.ActionAPI: {Burst: 2, Interval: time.Hour},
	})
	mw := RateLimit(limiter)
	e := echo.New()

	call := func(uid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if uid != "" {
			c.Set(ContextUID, uid)
		}
		require.NoError(t, mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, call("alice").Code)
	assert.Equal(t, http.StatusOK, call("alice").Code)

	blocked := call("alice")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "TOO_MANY_REQUESTS")

	// Other callers have their own bucket.
	assert.Equal(t, http.StatusOK, call("bob").Code)
	assert.Equal(t, http.StatusOK, call("").Code)
}
