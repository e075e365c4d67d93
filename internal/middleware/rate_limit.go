package middleware

import (
	"github.com/gin-gonic/gin"

	pkgErrors "agenda-assistant/pkg/errors"
	"agenda-assistant/pkg/response"
)

// RateLimit rejects requests once the token bucket is drained.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			response.Error(c, pkgErrors.NewHTTPError(429, "too many requests"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
