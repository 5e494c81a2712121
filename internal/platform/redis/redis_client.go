// Package redis opens the optional Redis connection.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"notice_board/internal/platform/config"
)

// NewRedisClient connects to cfg.Addr and pings it. It returns (nil, nil)
// when no address is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// check the connection
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		logrus.WithError(err).WithField("address", cfg.Addr).Error("Redis connection failed")
		return nil, err
	}

	logrus.WithField("address", cfg.Addr).Info("Redis connection successful")
	return rdb, nil
}
