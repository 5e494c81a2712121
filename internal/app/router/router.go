// Package router assembles the gin engine and its routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"notice_board/internal/api"
	authhandler "notice_board/internal/feature/auth/transport/handler"
	noticehandler "notice_board/internal/feature/notice/transport/handler"
	"notice_board/internal/platform/http/handler"
	jwtmw "notice_board/internal/platform/jwt"
	"notice_board/internal/platform/logging"
	"notice_board/internal/platform/ratelimit"
)

// Options carries the cross-cutting pieces the routes need.
type Options struct {
	// Verifier authenticates bearer tokens on protected routes.
	Verifier jwtmw.TokenVerifier
	// AuthLimiter throttles /register and /login. Nil disables it.
	AuthLimiter ratelimit.Limiter
	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string
}

func NewRouter(auth *authhandler.AuthHandler, notices *noticehandler.NoticeHandler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		logging.RequestID(),
		logging.AccessLog(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logging.FromContext(c).WithField("panic", recovered).Error("panic recovered")
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewError("internal server error"))
		}),
		cors.New(corsConfig(opts.CORSOrigins)),
	)

	// no auth required
	// health check
	for _, path := range []string{"/healthz", "/api/health"} {
		r.GET(path, handler.Health)
		r.HEAD(path, handler.Health)
		r.OPTIONS(path, handler.Health)
	}

	apiGroup := r.Group("/api")

	credentials := apiGroup.Group("")
	if opts.AuthLimiter != nil {
		credentials.Use(ratelimit.Middleware(opts.AuthLimiter, "auth"))
	}
	credentials.POST("/register", auth.Register)
	credentials.POST("/login", auth.Login)

	apiGroup.GET("/notices", notices.List)
	apiGroup.GET("/notices/:id", notices.Get)

	// bearer token required
	protected := apiGroup.Group("")
	protected.Use(jwtmw.AuthRequired(opts.Verifier))
	{
		protected.GET("/me", auth.Me)
		protected.POST("/notices", notices.Create)
		protected.POST("/notices/:id/repost", notices.Repost)
		protected.DELETE("/notices/:id", notices.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.NewError("not found"))
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", logging.HeaderRequestID},
		ExposeHeaders: []string{logging.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
