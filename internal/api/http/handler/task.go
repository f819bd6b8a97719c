package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apiErrors "github.com/dtroode/tasktracker-server/internal/api/errors"
	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

var errNoUserInContext = errors.New("user not found in context")

// TaskService defines business operations on a user's tasks.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID int64) ([]model.Task, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (model.Task, error)
	CreateTask(ctx context.Context, ownerID int64, fields model.TaskFields) (model.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, fields model.TaskFields) (model.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
}

// Task handles the /tasks endpoints. It expects the identity middleware to
// have placed the caller into the request context.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns every task of the caller.
func (h *Task) List(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Task handler: list tasks failed",
			"user_id", user.ID,
			"error", err.Error())
		response.Error(c, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one task of the caller.
func (h *Task) Get(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), user.ID, taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Create stores a new task owned by the caller.
func (h *Task) Create(c *gin.Context) {
	h.logger.Debug("Task handler: processing create task request")

	user, ok := h.user(c)
	if !ok {
		return
	}
	req, ok := bindTask(c)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), user.ID, req.fields())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// Update replaces the mutable fields of a task owned by the caller.
func (h *Task) Update(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}
	req, ok := bindTask(c)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), user.ID, taskID, req.fields())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task owned by the caller.
func (h *Task) Delete(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), user.ID, taskID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Task) user(c *gin.Context) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		response.Error(c, errNoUserInContext)
	}
	return user, ok
}

func taskIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, apiErrors.NewErrInvalidTaskID(raw))
		return 0, false
	}
	return id, true
}

func bindTask(c *gin.Context) (taskRequest, bool) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case errors.Is(err, io.EOF):
		response.Error(c, apiErrors.NewErrTitleRequired())
		return taskRequest{}, false
	case err != nil:
		response.Error(c, apiErrors.NewErrInvalidBody(err.Error()))
		return taskRequest{}, false
	}
	return req, true
}
