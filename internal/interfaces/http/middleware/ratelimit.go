package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eduhub/internal/infrastructure/ratelimit"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/utils"
)

// RateLimiter enforces per-IP request limits on a route group. Limits are
// shared across instances through the backing limiter store.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limits  ratelimit.Limits
	scope   string
	logger  logger.Interface
}

// NewRateLimiter creates a middleware wrapper around the given limiter.
// scope namespaces the keys so different route groups do not share budgets.
func NewRateLimiter(limiter ratelimit.RateLimiter, limits ratelimit.Limits, scope string, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limits:  limits,
		scope:   scope,
		logger:  log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
// A limiter backend failure allows the request through rather than blocking
// all traffic.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.scope + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limits)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
