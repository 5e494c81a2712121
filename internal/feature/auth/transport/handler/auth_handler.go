// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"notice_board/internal/api"
	"notice_board/internal/feature/auth/domain/entity"
	"notice_board/internal/feature/auth/transport/http/dto"
	"notice_board/internal/feature/auth/usecase"
	jwtmw "notice_board/internal/platform/jwt"
	"notice_board/internal/platform/logging"
	"notice_board/internal/platform/validation"
)

const (
	msgRegistered         = "user registered successfully"
	msgEmailTaken         = "email already registered"
	msgInvalidCredentials = "invalid email or password"
	msgUnauthorized       = "missing bearer token"
	msgUserNotFound       = "user not found"
	msgInternal           = "internal server error"
)

// AuthUsecase defines the use case for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user account.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login authenticates a user and returns a JWT token on success.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile loads the authenticated user.
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration API endpoint.
//   - binding or validation failure: 400
//   - duplicate email: 409
//   - success: 200 with the new user id
func (h *AuthHandler) Register(c *gin.Context) {
	log := logging.FromContext(c).WithField("remote_addr", c.ClientIP())

	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("register validation failed")
		c.JSON(http.StatusBadRequest, api.NewError(validation.Describe(err)))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.DisplayName(),
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		log.Warn("register rejected: duplicate email")
		c.JSON(http.StatusConflict, api.NewError(msgEmailTaken))
		return
	case errors.Is(err, usecase.ErrInvalidInput):
		log.WithError(err).Warn("register rejected")
		c.JSON(http.StatusBadRequest, api.NewError(inputMessage(err)))
		return
	default:
		log.WithError(err).Error("register failed")
		c.JSON(http.StatusInternalServerError, api.NewError(msgInternal))
		return
	}

	log.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("user registered")
	c.JSON(http.StatusOK, api.RegisterResponse{Message: msgRegistered, UserID: user.ID})
}

// Login handles the user login API endpoint.
// Unknown emails and wrong passwords produce the same 400 response.
func (h *AuthHandler) Login(c *gin.Context) {
	log := logging.FromContext(c).WithField("remote_addr", c.ClientIP())

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("login validation failed")
		c.JSON(http.StatusBadRequest, api.NewError(validation.Describe(err)))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrInvalidInput):
		// The actual cause is not exposed, to prevent user enumeration.
		log.Warn("login rejected")
		c.JSON(http.StatusBadRequest, api.NewError(msgInvalidCredentials))
		return
	default:
		log.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, api.NewError(msgInternal))
		return
	}

	log.Info("user logged in")
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Me handles GET /me for the bearer of the token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.NewError(msgUnauthorized))
		return
	}
	log := logging.FromContext(c).WithField("user_id", userID)

	user, err := h.auth.Profile(c.Request.Context(), userID)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrUserNotFound):
		log.Warn("token subject has no account")
		c.JSON(http.StatusNotFound, api.NewError(msgUserNotFound))
		return
	default:
		log.WithError(err).Error("load profile failed")
		c.JSON(http.StatusInternalServerError, api.NewError(msgInternal))
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(*user))
}

// inputMessage strips the sentinel prefix from a wrapped ErrInvalidInput.
func inputMessage(err error) string {
	return strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": ")
}
