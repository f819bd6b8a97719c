package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/tasktracker-server/internal/model"
)

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) ListTasks(ctx context.Context, ownerID int64) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, ownerID, taskID int64) (model.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskService) CreateTask(ctx context.Context, ownerID int64, fields model.TaskFields) (model.Task, error) {
	args := m.Called(ctx, ownerID, fields)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, ownerID, taskID int64, fields model.TaskFields) (model.Task, error) {
	args := m.Called(ctx, ownerID, taskID, fields)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
