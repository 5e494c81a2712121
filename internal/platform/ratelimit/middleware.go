package ratelimit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notice_board/internal/api"
	"notice_board/internal/platform/logging"
)

// Middleware rejects a client with 429 once it exceeds the limiter's budget
// for scope. Clients are keyed by IP. If the limiter itself fails the
// request is let through.
func Middleware(l Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			logging.FromContext(c).WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			logging.FromContext(c).WithField("remote_addr", c.ClientIP()).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.NewError("too many requests"))
			return
		}
		c.Next()
	}
}
