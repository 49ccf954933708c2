package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/infrastructure/ratelimit"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
	"github.com/plotwise-inc/plotwise/internal/shared/utils"
)

// RateLimit returns a Gin middleware that enforces per-client-IP limits
// through the given limiter. Limiter backend errors fail open so a degraded
// Redis never blocks all traffic.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
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
