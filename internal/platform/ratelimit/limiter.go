// Package ratelimit caps how often a client may call an endpoint within a
// fixed window.
package ratelimit

import "context"

// Limiter decides whether one more request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
