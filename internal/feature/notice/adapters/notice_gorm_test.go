package adapters

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"notice_board/internal/feature/notice/domain/entity"
	"notice_board/internal/feature/notice/usecase"
	"notice_board/internal/platform/config"
	"notice_board/internal/platform/db"
)

func openTestDB(t *testing.T, path string) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenDB(config.DBConfig{
		Driver:         "sqlite",
		Path:           path,
		AutoMigrate:    true,
		ConnectTimeout: time.Second,
	}, &entity.Notice{})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

// setupTestDB prepares a file-backed SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "notices.db"))
}

func ptr(v uint) *uint { return &v }

func mustCreate(t *testing.T, repo *noticeGorm, title string, author *uint) *entity.Notice {
	t.Helper()
	n := &entity.Notice{Title: title, Message: title + " body", Date: time.Now().UTC(), UserID: author}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func countNotices(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var c int64
	require.NoError(t, gdb.Model(&entity.Notice{}).Count(&c).Error)
	return c
}

func TestNoticeGorm_Create(t *testing.T) {
	repo := NewNoticeGorm(setupTestDB(t))

	n := mustCreate(t, repo, "first", ptr(1))

	assert.NotZero(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())

	assert.Error(t, repo.Create(context.Background(), nil))
}

func TestNoticeGorm_List_NewestFirst(t *testing.T) {
	repo := NewNoticeGorm(setupTestDB(t))

	empty, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a := mustCreate(t, repo, "A", nil)
	b := mustCreate(t, repo, "B", nil)
	c := mustCreate(t, repo, "C", nil)

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, []uint{got[0].ID, got[1].ID, got[2].ID})
	assert.Nil(t, got[0].UserID)
}

func TestNoticeGorm_List_TieBreaksOnID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNoticeGorm(gdb)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, title := range []string{"x", "y"} {
		require.NoError(t, gdb.Create(&entity.Notice{Title: title, Message: "m", Date: at, CreatedAt: at}).Error)
	}

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[0].Title)
}

func TestNoticeGorm_FindByID(t *testing.T) {
	repo := NewNoticeGorm(setupTestDB(t))
	n := mustCreate(t, repo, "find me", ptr(4))

	found, err := repo.FindByID(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, "find me", found.Title)
	require.NotNil(t, found.UserID)
	assert.Equal(t, uint(4), *found.UserID)

	_, err = repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrNoticeNotFound)
}

func TestNoticeGorm_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNoticeGorm(gdb)
	keep := mustCreate(t, repo, "keep", nil)
	drop := mustCreate(t, repo, "drop", nil)

	t.Run("removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(context.Background(), drop.ID))

		_, err := repo.FindByID(context.Background(), drop.ID)
		assert.ErrorIs(t, err, usecase.ErrNoticeNotFound)
		assert.Equal(t, int64(1), countNotices(t, gdb))
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		require.NoError(t, repo.Delete(context.Background(), 12345))
		require.NoError(t, repo.Delete(context.Background(), drop.ID))

		assert.Equal(t, int64(1), countNotices(t, gdb))
		_, err := repo.FindByID(context.Background(), keep.ID)
		assert.NoError(t, err)
	})
}

func TestNoticeGorm_Repost(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNoticeGorm(gdb)
	original := mustCreate(t, repo, "original", ptr(1))

	t.Run("clones under the reposting user", func(t *testing.T) {
		clone, err := repo.Repost(context.Background(), original.ID, 2)

		require.NoError(t, err)
		assert.NotEqual(t, original.ID, clone.ID)
		assert.Equal(t, original.Title, clone.Title)
		assert.Equal(t, original.Message, clone.Message)
		require.NotNil(t, clone.UserID)
		assert.Equal(t, uint(2), *clone.UserID)
		assert.True(t, clone.CreatedAt.After(original.CreatedAt))

		list, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, clone.ID, list[0].ID)
	})

	t.Run("clock behind the source still yields a newer timestamp", func(t *testing.T) {
		r := NewNoticeGorm(gdb)
		r.now = func() time.Time { return original.CreatedAt.Add(-time.Hour) }

		clone, err := r.Repost(context.Background(), original.ID, 3)

		require.NoError(t, err)
		assert.True(t, clone.CreatedAt.After(original.CreatedAt))
	})

	t.Run("missing source", func(t *testing.T) {
		before := countNotices(t, gdb)

		clone, err := repo.Repost(context.Background(), 999, 2)

		assert.ErrorIs(t, err, usecase.ErrNoticeNotFound)
		assert.Nil(t, clone)
		assert.Equal(t, before, countNotices(t, gdb))
	})
}

func TestNoticeGorm_EmptyTitleInsertsNothing(t *testing.T) {
	gdb := setupTestDB(t)
	uc := usecase.NewNoticeUsecase(NewNoticeGorm(gdb))

	_, err := uc.Create(context.Background(), usecase.CreateInput{Title: "  ", Message: "body"})

	assert.ErrorIs(t, err, usecase.ErrInvalidNotice)
	assert.Equal(t, int64(0), countNotices(t, gdb))
}

func TestNoticeGorm_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	first := openTestDB(t, path)
	repo := NewNoticeGorm(first)
	a := mustCreate(t, repo, "A", nil)
	b := mustCreate(t, repo, "B", nil)
	require.NoError(t, repo.Delete(context.Background(), a.ID))
	sqlDB, err := first.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	second := NewNoticeGorm(openTestDB(t, path))
	got, err := second.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}
