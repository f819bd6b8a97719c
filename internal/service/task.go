package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apiErrors "github.com/dtroode/tasktracker-server/internal/api/errors"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

func (s *Task) ListTasks(ctx context.Context, ownerID int64) ([]model.Task, error) {
	tasks, err := s.taskStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return tasks, nil
}

func (s *Task) GetTask(ctx context.Context, ownerID, taskID int64) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apiErrors.NewErrTaskNotFound(taskID)
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (s *Task) CreateTask(ctx context.Context, ownerID int64, fields model.TaskFields) (model.Task, error) {
	if err := validateFields(fields); err != nil {
		return model.Task{}, err
	}

	task, err := s.taskStore.Create(ctx, fields.Apply(model.Task{OwnerID: ownerID}))
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", ownerID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"user_id", ownerID,
		"task_id", task.ID)
	return task, nil
}

// UpdateTask replaces every mutable field of the owned task. Concurrent
// updates race and the last writer wins.
func (s *Task) UpdateTask(ctx context.Context, ownerID, taskID int64, fields model.TaskFields) (model.Task, error) {
	if err := validateFields(fields); err != nil {
		return model.Task{}, err
	}

	task, err := s.taskStore.Update(ctx, fields.Apply(model.Task{ID: taskID, OwnerID: ownerID}))
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apiErrors.NewErrTaskNotFound(taskID)
	}
	if err != nil {
		s.logger.Error("Task service: failed to update task",
			"user_id", ownerID,
			"task_id", taskID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (s *Task) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	err := s.taskStore.Delete(ctx, taskID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrTaskNotFound(taskID)
	}
	if err != nil {
		s.logger.Error("Task service: failed to delete task",
			"user_id", ownerID,
			"task_id", taskID,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"user_id", ownerID,
		"task_id", taskID)
	return nil
}

func validateFields(fields model.TaskFields) error {
	if strings.TrimSpace(fields.Title) == "" {
		return apiErrors.NewErrTitleRequired()
	}
	return nil
}
