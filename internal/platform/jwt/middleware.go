package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"notice_board/internal/api"
	"notice_board/internal/platform/logging"
)

const ContextUserID = "userID"

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.NewError(ErrTokenMissing.Error()))
			return
		}

		// 2. Verify signature and expiry
		claims, err := verifier.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			logging.FromContext(c).WithError(err).WithField("remote_addr", c.ClientIP()).Warn("bearer authentication failed")
			msg := ErrTokenInvalid.Error()
			switch {
			case errors.Is(err, ErrTokenExpired):
				msg = ErrTokenExpired.Error()
			case errors.Is(err, ErrTokenMissing):
				msg = ErrTokenMissing.Error()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.NewError(msg))
			return
		}

		// 3. Pass the caller's identity on
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserIDFrom returns the authenticated user id stored by AuthRequired.
func UserIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
