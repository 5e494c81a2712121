package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"notice_board/internal/platform/ratelimit"
)

// NewAuthLimiter creates the limiter guarding the credential endpoints.
// It is Redis-backed when Redis is available and in-memory otherwise.
// A non-positive max disables rate limiting and returns nil.
func NewAuthLimiter(rdb *redis.Client, max int, window time.Duration) ratelimit.Limiter {
	if max <= 0 || window <= 0 {
		return nil
	}
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, max, window, "ratelimit")
	}
	return ratelimit.NewMemoryLimiter(max, window)
}
