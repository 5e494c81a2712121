// Package handler provides HTTP handlers for platform level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notice_board/internal/api"
)

// Health answers liveness probes on /api/health and /healthz.
// Responses are never cached.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, api.HealthResponse{OK: true})
	}
}
