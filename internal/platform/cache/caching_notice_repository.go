// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"notice_board/internal/feature/notice/domain/entity"
	"notice_board/internal/feature/notice/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "notices"
)

// CachingNoticeRepository decorates a NoticeRepository with a Redis copy of
// the notice list. The store stays the source of truth: Redis errors are
// logged and otherwise ignored.
type CachingNoticeRepository struct {
	inner     usecase.NoticeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NoticeRepository = (*CachingNoticeRepository)(nil)

// NewCachingNoticeRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "notices".
// A nil rdb turns every method into a pass-through.
func NewCachingNoticeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NoticeRepository, namespace string) *CachingNoticeRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingNoticeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: safe(namespace),
	}
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// errStaleSnapshot aborts a cache fill when a write landed after the
// snapshot was read.
var errStaleSnapshot = errors.New("notice list changed during read")

// List returns the cached list when present, otherwise reads the store and
// caches the result.
//
// The fill is guarded by a generation counter that every mutation bumps, so
// a snapshot taken before a concurrent write is never stored.
func (c *CachingNoticeRepository) List(ctx context.Context) ([]entity.Notice, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	b, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil && len(b) > 0:
		out := []entity.Notice{}
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	case err != nil && !errors.Is(err, redis.Nil):
		logrus.WithError(err).WithField("key", key).Warn("notice cache read failed")
	}

	// 2) Remember the generation the snapshot belongs to
	gen, genErr := c.generation(ctx, c.rdb)
	if genErr != nil {
		logrus.WithError(genErr).WithField("key", c.genKey()).Warn("notice cache generation read failed")
	}

	// 3) Fallback to the store
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return out, nil
	}

	// 4) Store in cache (best effort) unless a write happened meanwhile
	b, err = json.Marshal(out)
	if err != nil {
		return out, nil
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := c.generation(ctx, tx)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, c.ttl)
			return nil
		})
		return err
	}, c.genKey())
	switch {
	case err == nil:
	case errors.Is(err, errStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		logrus.WithField("key", key).Debug("notice cache fill skipped after concurrent write")
	default:
		logrus.WithError(err).WithField("key", key).Warn("notice cache write failed")
	}
	return out, nil
}

// FindByID is not cached.
func (c *CachingNoticeRepository) FindByID(ctx context.Context, id uint) (*entity.Notice, error) {
	return c.inner.FindByID(ctx, id)
}

// Create stores n and invalidates the cached list.
func (c *CachingNoticeRepository) Create(ctx context.Context, n *entity.Notice) error {
	if err := c.inner.Create(ctx, n); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes the notice and invalidates the cached list.
func (c *CachingNoticeRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Repost clones the notice and invalidates the cached list.
func (c *CachingNoticeRepository) Repost(ctx context.Context, id, userID uint) (*entity.Notice, error) {
	n, err := c.inner.Repost(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return n, nil
}

// invalidate bumps the generation before dropping the list so that an
// in-flight fill started earlier cannot write its snapshot back.
func (c *CachingNoticeRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey())
		pipe.Del(ctx, c.listKey())
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("key", c.listKey()).Warn("notice cache invalidation failed")
	}
}

// generation reads the current generation; a missing key is generation "".
func (c *CachingNoticeRepository) generation(ctx context.Context, r getter) (string, error) {
	v, err := r.Get(ctx, c.genKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (c *CachingNoticeRepository) listKey() string {
	return c.namespace + ":list"
}

func (c *CachingNoticeRepository) genKey() string {
	return c.namespace + ":gen"
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
