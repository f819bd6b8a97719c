package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apiErrors "github.com/dtroode/tasktracker-server/internal/api/errors"
	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// UserService registers users by email.
type UserService interface {
	Register(ctx context.Context, email string) (model.User, error)
}

// User handles the registration endpoint.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Register answers 201 for both new and already registered emails.
func (h *User) Register(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case errors.Is(err, io.EOF):
		response.Error(c, apiErrors.NewErrEmailRequired())
		return
	case err != nil:
		response.Error(c, apiErrors.NewErrInvalidBody(err.Error()))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("User handler: register failed", "error", err.Error())
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}
