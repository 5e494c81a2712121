// Package usecase implements the business logic for the notice feature.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"notice_board/internal/feature/notice/domain/entity"
)

const (
	// MaxTitleLength is the longest title accepted, in characters.
	MaxTitleLength = 200

	dateOnlyLayout = "2006-01-02"
)

// NoticeRepository abstracts the persistence layer for notices.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NoticeRepository interface {
	// Create persists n and fills in its ID and CreatedAt.
	Create(ctx context.Context, n *entity.Notice) error

	// List returns every notice, newest first.
	List(ctx context.Context) ([]entity.Notice, error)

	// FindByID returns ErrNoticeNotFound if the notice does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Notice, error)

	// Delete removes the notice. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uint) error

	// Repost copies the notice's title and message into a new notice owned
	// by userID, atomically. It returns ErrNoticeNotFound if id does not exist.
	Repost(ctx context.Context, id, userID uint) (*entity.Notice, error)
}

// CreateInput carries the fields accepted by Create. Date may be empty.
type CreateInput struct {
	Title   string
	Message string
	Date    string
	UserID  *uint
}

type noticeUsecase struct {
	notices NoticeRepository
	now     func() time.Time
}

// NewNoticeUsecase creates a new instance of noticeUsecase.
func NewNoticeUsecase(notices NoticeRepository) *noticeUsecase {
	return &noticeUsecase{notices: notices, now: time.Now}
}

// Create validates in and stores a new notice.
// Nothing is written when validation fails.
func (u *noticeUsecase) Create(ctx context.Context, in CreateInput) (*entity.Notice, error) {
	title := strings.TrimSpace(in.Title)
	message := strings.TrimSpace(in.Message)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidNotice)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: title must be at most %d characters", ErrInvalidNotice, MaxTitleLength)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidNotice)
	}

	date, err := u.parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	n := &entity.Notice{
		Title:   title,
		Message: message,
		Date:    date,
		UserID:  in.UserID,
	}
	if err := u.notices.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	return n, nil
}

// parseDate accepts RFC 3339 or YYYY-MM-DD. An empty value means now.
func (u *noticeUsecase) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return u.now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be RFC 3339 or YYYY-MM-DD", ErrInvalidNotice)
}

// List returns all notices, newest first.
func (u *noticeUsecase) List(ctx context.Context) ([]entity.Notice, error) {
	ns, err := u.notices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return ns, nil
}

// Get returns a single notice or ErrNoticeNotFound.
func (u *noticeUsecase) Get(ctx context.Context, id uint) (*entity.Notice, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidNotice)
	}
	n, err := u.notices.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get notice %d: %w", id, err)
	}
	return n, nil
}

// Delete removes a notice. It succeeds whether or not the notice existed.
func (u *noticeUsecase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidNotice)
	}
	if err := u.notices.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

// Repost clones notice id as a new notice authored by userID.
func (u *noticeUsecase) Repost(ctx context.Context, id, userID uint) (*entity.Notice, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidNotice)
	}
	n, err := u.notices.Repost(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to repost notice %d: %w", id, err)
	}
	return n, nil
}
