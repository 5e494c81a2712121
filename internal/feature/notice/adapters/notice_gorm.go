// Package adapters provides repository implementations for the notice feature.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"notice_board/internal/feature/notice/domain/entity"
	"notice_board/internal/feature/notice/usecase"
)

// noticeGorm is the gorm implementation of usecase.NoticeRepository.
type noticeGorm struct {
	db  *gorm.DB
	now func() time.Time
}

// Compile-time check to ensure noticeGorm implements NoticeRepository.
var _ usecase.NoticeRepository = (*noticeGorm)(nil)

// NewNoticeGorm creates a new instance of noticeGorm.
func NewNoticeGorm(db *gorm.DB) *noticeGorm {
	return &noticeGorm{db: db, now: time.Now}
}

// Create inserts n.
func (r *noticeGorm) Create(ctx context.Context, n *entity.Notice) error {
	if n == nil {
		return errors.New("notice is nil")
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("insert notice: %w", err)
	}
	return nil
}

// List returns all notices ordered by creation time, newest first.
// The id breaks ties between notices created in the same instant.
func (r *noticeGorm) List(ctx context.Context) ([]entity.Notice, error) {
	ns := []entity.Notice{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ns).Error
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return ns, nil
}

// FindByID returns usecase.ErrNoticeNotFound if the notice does not exist.
func (r *noticeGorm) FindByID(ctx context.Context, id uint) (*entity.Notice, error) {
	var n entity.Notice
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}
	return &n, nil
}

// Delete hard-deletes the notice. A missing id affects no rows and is not an error.
func (r *noticeGorm) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Notice{}, id).Error; err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	return nil
}

// Repost reads the source notice and inserts its copy in one transaction.
func (r *noticeGorm) Repost(ctx context.Context, id, userID uint) (*entity.Notice, error) {
	var clone entity.Notice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src entity.Notice
		if err := tx.First(&src, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrNoticeNotFound
			}
			return fmt.Errorf("load notice: %w", err)
		}

		now := r.now().UTC()
		if !now.After(src.CreatedAt) {
			now = src.CreatedAt.Add(time.Microsecond)
		}
		author := userID
		clone = entity.Notice{
			Title:     src.Title,
			Message:   src.Message,
			Date:      now,
			UserID:    &author,
			CreatedAt: now,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return fmt.Errorf("insert repost: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &clone, nil
}
