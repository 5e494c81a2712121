// Package handler provides HTTP handlers for the notice feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"notice_board/internal/api"
	"notice_board/internal/feature/notice/domain/entity"
	"notice_board/internal/feature/notice/transport/http/dto"
	"notice_board/internal/feature/notice/usecase"
	jwtmw "notice_board/internal/platform/jwt"
	"notice_board/internal/platform/logging"
	"notice_board/internal/platform/validation"
)

const (
	msgInvalidID    = "invalid notice id"
	msgNotFound     = "notice not found"
	msgUnauthorized = "missing bearer token"
	msgInternal     = "internal server error"
)

// NoticeUsecase defines the notice operations used by the handler.
type NoticeUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Notice, error)
	List(ctx context.Context) ([]entity.Notice, error)
	Get(ctx context.Context, id uint) (*entity.Notice, error)
	Delete(ctx context.Context, id uint) error
	Repost(ctx context.Context, id, userID uint) (*entity.Notice, error)
}

// NoticeHandler handles HTTP requests for notices.
type NoticeHandler struct {
	notices NoticeUsecase
}

// NewNoticeHandler creates a new instance of NoticeHandler.
func NewNoticeHandler(notices NoticeUsecase) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// List handles GET /notices.
func (h *NoticeHandler) List(c *gin.Context) {
	ns, err := h.notices.List(c.Request.Context())
	if err != nil {
		logging.FromContext(c).WithError(err).Error("list notices failed")
		c.JSON(http.StatusInternalServerError, api.NewError(msgInternal))
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ns))
}

// Get handles GET /notices/:id.
func (h *NoticeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.notices.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, logging.FromContext(c).WithField("notice_id", id), err, "get notice failed")
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*n))
}

// Create handles POST /notices. The author is the authenticated caller.
func (h *NoticeHandler) Create(c *gin.Context) {
	log := logging.FromContext(c)

	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.NewError(msgUnauthorized))
		return
	}

	var req dto.CreateNoticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("notice validation failed")
		c.JSON(http.StatusBadRequest, api.NewError(validation.Describe(err)))
		return
	}

	n, err := h.notices.Create(c.Request.Context(), usecase.CreateInput{
		Title:   req.Title,
		Message: req.Body(),
		Date:    req.Date,
		UserID:  &userID,
	})
	if err != nil {
		h.fail(c, log, err, "create notice failed")
		return
	}

	log.WithFields(logrus.Fields{"notice_id": n.ID, "user_id": userID}).Info("notice created")
	c.JSON(http.StatusOK, dto.FromEntity(*n))
}

// Repost handles POST /notices/:id/repost and returns the new notice.
func (h *NoticeHandler) Repost(c *gin.Context) {
	log := logging.FromContext(c)

	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.NewError(msgUnauthorized))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.notices.Repost(c.Request.Context(), id, userID)
	if err != nil {
		h.fail(c, log.WithField("notice_id", id), err, "repost notice failed")
		return
	}

	log.WithFields(logrus.Fields{"source_id": id, "notice_id": n.ID, "user_id": userID}).Info("notice reposted")
	c.JSON(http.StatusOK, dto.FromEntity(*n))
}

// Delete handles DELETE /notices/:id. Deleting a missing notice succeeds.
func (h *NoticeHandler) Delete(c *gin.Context) {
	log := logging.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.notices.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, log.WithField("notice_id", id), err, "delete notice failed")
		return
	}

	log.WithField("notice_id", id).Info("notice deleted")
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

// fail maps a use case error to a response. Unknown errors are logged and hidden.
func (h *NoticeHandler) fail(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotice):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, api.NewError(
			strings.TrimPrefix(err.Error(), usecase.ErrInvalidNotice.Error()+": "),
		))
	case errors.Is(err, usecase.ErrNoticeNotFound):
		log.Warn(msg)
		c.JSON(http.StatusNotFound, api.NewError(msgNotFound))
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, api.NewError(msgInternal))
	}
}

// parseID reads the :id path parameter, writing a 400 if it is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.NewError(msgInvalidID))
		return 0, false
	}
	return uint(id), true
}
