package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"shareheart/internal/infrastructure/ratelimit"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
	"shareheart/pkg/response"
)

// RateLimit limits each caller to the limiter's ActionAPI policy. Callers are
// keyed by uid once authenticated, by IP otherwise.
func RateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject := UID(c)
			if subject == "" {
				subject = "ip:" + c.RealIP()
			}

			ok, wait := limiter.Allow(subject, ratelimit.ActionAPI)
			if !ok {
				retry := int(math.Ceil(wait.Seconds()))
				if retry < 1 {
					retry = 1
				}
				logger.Warn("RATE LIMIT: %s %s blocked for %s (retry in %ds)", c.Request().Method, c.Path(), subject, retry)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}
