// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	noticeadapters "notice_board/internal/feature/notice/adapters"
	"notice_board/internal/feature/notice/usecase"
	"notice_board/internal/platform/cache"
)

// NewNoticeRepository creates a NoticeRepository implementation.
// If Redis is available, the gorm repository is wrapped with the list cache.
func NewNoticeRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.NoticeRepository {
	repo := noticeadapters.NewNoticeGorm(db)
	if rdb != nil {
		return cache.NewCachingNoticeRepository(rdb, ttl, repo, "notices")
	}
	return repo
}
