package middleware

import (
	"github.com/gin-gonic/gin"

	"preparos/internal/infrastructure/ratelimit"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

// RateLimitMiddleware limits requests per client IP. Requests pass when
// the limiter backend is unavailable.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	rule    ratelimit.Rule
	prefix  string
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, prefix string, rule ratelimit.Rule, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		rule:    rule,
		prefix:  prefix,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := m.prefix + ":" + c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.rule)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("rate limit exceeded", "key", key)
			abortWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
