package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count     int
	lastReset time.Time
}

// MemoryLimiter counts requests per key in process memory. It is used when
// Redis is not configured, so limits are per instance.
type MemoryLimiter struct {
	limit    int           // requests allowed per interval
	interval time.Duration // length of one window

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates a MemoryLimiter allowing limit requests per interval.
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	// reset the count once the interval has passed
	if !ok || now.Sub(w.lastReset) >= l.interval {
		if len(l.windows) > 10000 {
			l.sweep(now)
		}
		w = &window{lastReset: now}
		l.windows[key] = w
	}

	w.count++
	return w.count <= l.limit, nil
}

// sweep drops expired windows so idle clients do not accumulate.
func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if now.Sub(w.lastReset) >= l.interval {
			delete(l.windows, k)
		}
	}
}
