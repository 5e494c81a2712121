// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	// EnvProduction is the APP_ENV value that turns on production checks.
	EnvProduction = "production"

	// devJWTSecret is only used outside production when JWT_SECRET is unset.
	devJWTSecret = "dev-insecure-notice-board-secret"
)

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is unset in production.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Config holds every setting the server needs. It is built once in main
// and passed to the components that need it.
type Config struct {
	AppEnv string
	Port   string

	DB    DBConfig
	JWT   JWTConfig
	Redis RedisConfig

	BcryptCost int

	CacheTTL        time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigins     []string

	LogLevel  string
	LogFormat string
}

// DBConfig selects and configures the relational store.
type DBConfig struct {
	Driver         string // sqlite, postgres, mysql
	Path           string // SQLite file
	URL            string // full DSN for postgres/mysql
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	AutoMigrate    bool
	ConnectTimeout time.Duration
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	// Insecure reports that Secret is the built-in development fallback.
	Insecure bool
}

// RedisConfig configures the optional Redis client. Addr == "" disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// LoadDotenv reads .env into the process environment if the file exists.
// Variables that are already set win.
func LoadDotenv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			logrus.WithError(err).WithField("path", p).Warn("failed to load env file")
			continue
		}
		logrus.WithField("path", p).Info("loaded env file")
		return
	}
	logrus.Info(".env not found; using system environment variables")
}

// Load builds a Config from environment variables.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		AppEnv:    getString("APP_ENV", "development"),
		Port:      getString("PORT", "4000"),
		LogLevel:  getString("LOG_LEVEL", "info"),
		LogFormat: getString("LOG_FORMAT", "text"),
	}

	cfg.DB = DBConfig{
		Driver:   strings.ToLower(getString("DB_DRIVER", "sqlite")),
		Path:     getString("DB_PATH", "notice_board.db"),
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getString("DB_HOST", "127.0.0.1"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getString("DB_NAME", "notice_board"),
	}
	cfg.DB.AutoMigrate = getBool("DB_AUTO_MIGRATE", true, &errs)
	cfg.DB.ConnectTimeout = getDuration("DB_CONNECT_TIMEOUT", 60*time.Second, &errs)

	cfg.JWT = JWTConfig{
		Secret: os.Getenv("JWT_SECRET"),
		TTL:    getDuration("JWT_TTL", 24*time.Hour, &errs),
	}

	cfg.Redis = RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getInt("REDIS_DB", 0, &errs),
	}

	cfg.BcryptCost = getInt("BCRYPT_COST", 10, &errs)
	cfg.CacheTTL = getDuration("CACHE_TTL", 5*time.Minute, &errs)
	cfg.RateLimitMax = getInt("RATE_LIMIT_MAX", 20, &errs)
	cfg.RateLimitWindow = getDuration("RATE_LIMIT_WINDOW", time.Minute, &errs)
	cfg.CORSOrigins = splitList(getString("CORS_ORIGINS", "*"))

	switch cfg.DB.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DB.Driver))
	}
	if cfg.JWT.TTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			errs = append(errs, ErrMissingJWTSecret)
		} else {
			cfg.JWT.Secret = devJWTSecret
			cfg.JWT.Insecure = true
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getInt(key string, def int, errs *[]error) int {
	v := getString(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func getBool(key string, def bool, errs *[]error) bool {
	v := getString(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func getDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := getString(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
