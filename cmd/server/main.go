package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"notice_board/internal/app/di"
	"notice_board/internal/app/router"
	authadapters "notice_board/internal/feature/auth/adapters"
	authentity "notice_board/internal/feature/auth/domain/entity"
	authhandler "notice_board/internal/feature/auth/transport/handler"
	authusecase "notice_board/internal/feature/auth/usecase"
	noticeentity "notice_board/internal/feature/notice/domain/entity"
	noticehandler "notice_board/internal/feature/notice/transport/handler"
	noticeusecase "notice_board/internal/feature/notice/usecase"
	"notice_board/internal/platform/config"
	"notice_board/internal/platform/db"
	jwtmw "notice_board/internal/platform/jwt"
	"notice_board/internal/platform/logging"
	"notice_board/internal/platform/password"
	platformredis "notice_board/internal/platform/redis"
	"notice_board/internal/platform/validation"
)

func main() {
	config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// warn about the development secret
	if cfg.JWT.Insecure {
		logrus.Warn("JWT_SECRET is not set; using an insecure development secret. Set a strong secret in production.")
	}

	if err := validation.Register(); err != nil {
		logrus.WithError(err).Fatal("failed to register validators")
	}

	// db
	gdb, err := db.OpenDB(cfg.DB, &authentity.User{}, &noticeentity.Notice{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(context.Background(), cfg.Redis); err != nil {
		logrus.Warn("Redis unavailable. Running without cache.")
	} else if tmp != nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				logrus.WithError(err).Error("failed to close Redis client")
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(gdb)
	noticeRepo := di.NewNoticeRepository(gdb, rdb, cfg.CacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		password.NewBcryptHasher(cfg.BcryptCost),
		jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.TTL),
	)
	noticeUC := noticeusecase.NewNoticeUsecase(noticeRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	noticeH := noticehandler.NewNoticeHandler(noticeUC)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.NewRouter(authH, noticeH, router.Options{
		Verifier:    jwtmw.NewVerifier(cfg.JWT.Secret),
		AuthLimiter: di.NewAuthLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow),
		CORSOrigins: cfg.CORSOrigins,
	})

	logrus.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"env":        cfg.AppEnv,
		"driver":     cfg.DB.Driver,
		"redis":      rdb != nil,
		"rate_limit": cfg.RateLimitMax,
	}).Info("server listening")

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
