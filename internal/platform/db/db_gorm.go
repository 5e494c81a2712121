// Package db opens the gorm connection shared by every repository.
package db

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"notice_board/internal/platform/config"
	"notice_board/internal/platform/logging"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Opener opens a gorm connection for a DSN. It is swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the driver specific connection string for cfg.
//
// SQLite is opened in WAL mode with synchronous=FULL so that a committed
// write is on disk before the call returns.
func BuildDSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case "sqlite":
		q := url.Values{}
		q.Set("_busy_timeout", "5000")
		q.Set("_journal_mode", "WAL")
		q.Set("_synchronous", "FULL")
		q.Set("_foreign_keys", "on")
		return cfg.Path + "?" + q.Encode(), nil
	case "postgres":
		if cfg.URL != "" {
			return cfg.URL, nil
		}
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, port, cfg.User, cfg.Password, cfg.Name), nil
	case "mysql":
		if cfg.URL != "" {
			return cfg.URL, nil
		}
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, port, cfg.Name), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Dialector returns the gorm dialector for driver.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return gmysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewOpener returns an Opener that connects with driver and verifies the
// connection with a ping.
func NewOpener(driver string) Opener {
	return func(dsn string) (*gorm.DB, error) {
		dialector, err := Dialector(driver, dsn)
		if err != nil {
			return nil, err
		}
		gdb, err := gorm.Open(dialector, &gorm.Config{
			Logger:         logging.GormLogger(),
			TranslateError: true,
			// UTC everywhere keeps SQLite's text timestamps ordered.
			NowFunc: func() time.Time { return time.Now().UTC() },
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		if driver == "sqlite" {
			// One connection: SQLite allows a single writer, so writes queue here.
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxOpenConns(20)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return gdb, nil
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		gdb, err := opener(dsn)
		if err == nil {
			return gdb, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		logrus.WithError(err).Warn("DB connect failed, retrying...")
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to the configured database and, if enabled, migrates models.
func OpenDB(cfg config.DBConfig, models ...any) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	gdb, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, NewOpener(cfg.Driver))
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate && len(models) > 0 {
		if err := gdb.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{"driver": cfg.Driver, "migrated": cfg.AutoMigrate}).Info("database ready")
	return gdb, nil
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	// MySQL error 1062: duplicate entry for unique key
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	// PostgreSQL SQLSTATE 23505: unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return false
}
