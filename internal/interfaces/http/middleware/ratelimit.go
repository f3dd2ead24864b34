package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/infrastructure/ratelimit"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

// RateLimitRecorder counts rejected requests.
type RateLimitRecorder interface {
	RateLimitHit(route string)
}

// RateLimiter applies a fixed-window limit per client IP and route.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	metrics RateLimitRecorder
	logger  logger.Interface
}

func NewRateLimiter(
	limiter ratelimit.RateLimiter,
	limit int,
	window time.Duration,
	metrics RateLimitRecorder,
	logger logger.Interface,
) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  ratelimit.Policy{Limit: limit, Window: window},
		metrics: metrics,
		logger:  logger,
	}
}

// Limit fails open: a limiter error lets the request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		key := "ip:" + c.ClientIP() + ":" + route

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "route", route, "error", err)
			c.Next()
			return
		}

		if !allowed {
			if rl.metrics != nil {
				rl.metrics.RateLimitHit(route)
			}
			c.Header("Retry-After", retryAfter(rl.policy.Window))
			utils.ErrorResponse(c, http.StatusTooManyRequests, constants.ErrMsgTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

func retryAfter(window time.Duration) string {
	secs := int(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
