package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/tasktracker-server/internal/api/errors"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/testutil"
)

func assertAPICode(t *testing.T, err error, code int) {
	t.Helper()
	var apiErr *apiErrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.HTTPCode)
}

func TestTaskService_ListTasks(t *testing.T) {
	t.Run("nil from store becomes empty slice", func(t *testing.T) {
		store := &MockTaskStore{}
		store.On("ListByOwner", mock.Anything, int64(1)).Return(nil, nil)
		svc := NewTask(store, testutil.MakeNoopLogger())

		tasks, err := svc.ListTasks(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		store := &MockTaskStore{}
		boom := errors.New("boom")
		store.On("ListByOwner", mock.Anything, int64(1)).Return(nil, boom)
		svc := NewTask(store, testutil.MakeNoopLogger())

		_, err := svc.ListTasks(context.Background(), 1)
		assert.ErrorIs(t, err, boom)
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	desc := "two litres"

	tests := []struct {
		name      string
		fields    model.TaskFields
		mockSetup func(*MockTaskStore)
		wantCode  int
		wantErr   bool
	}{
		{
			name:   "successful creation",
			fields: model.TaskFields{Title: "Buy milk", Description: &desc},
			mockSetup: func(store *MockTaskStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
					return task.OwnerID == 5 && task.Title == "Buy milk" && task.Description == &desc && task.ID == 0
				})).Return(model.Task{ID: 11, OwnerID: 5, Title: "Buy milk", Description: &desc}, nil)
			},
		},
		{
			name:      "empty title",
			fields:    model.TaskFields{Title: ""},
			mockSetup: func(store *MockTaskStore) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:      "whitespace title",
			fields:    model.TaskFields{Title: "   "},
			mockSetup: func(store *MockTaskStore) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:   "storage failure",
			fields: model.TaskFields{Title: "Buy milk"},
			mockSetup: func(store *MockTaskStore) {
				store.On("Create", mock.Anything, mock.Anything).Return(model.Task{}, errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockTaskStore{}
			tt.mockSetup(store)
			svc := NewTask(store, testutil.MakeNoopLogger())

			task, err := svc.CreateTask(context.Background(), 5, tt.fields)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assertAPICode(t, err, tt.wantCode)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(11), task.ID)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestTaskService_UpdateTask(t *testing.T) {
	tests := []struct {
		name      string
		fields    model.TaskFields
		mockSetup func(*MockTaskStore)
		wantCode  int
	}{
		{
			name:   "owned task",
			fields: model.TaskFields{Title: "done", Completed: true},
			mockSetup: func(store *MockTaskStore) {
				want := model.Task{ID: 9, OwnerID: 5, Title: "done", Completed: true}
				store.On("Update", mock.Anything, want).Return(want, nil)
			},
		},
		{
			name:   "missing or foreign task",
			fields: model.TaskFields{Title: "done"},
			mockSetup: func(store *MockTaskStore) {
				store.On("Update", mock.Anything, mock.Anything).Return(model.Task{}, model.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "missing title",
			fields:    model.TaskFields{},
			mockSetup: func(store *MockTaskStore) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockTaskStore{}
			tt.mockSetup(store)
			svc := NewTask(store, testutil.MakeNoopLogger())

			task, err := svc.UpdateTask(context.Background(), 5, 9, tt.fields)
			if tt.wantCode != 0 {
				assertAPICode(t, err, tt.wantCode)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(9), task.ID)
				assert.Equal(t, int64(5), task.OwnerID)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestTaskService_GetTask(t *testing.T) {
	store := &MockTaskStore{}
	store.On("GetByID", mock.Anything, int64(9), int64(5)).Return(model.Task{}, model.ErrNotFound)
	svc := NewTask(store, testutil.MakeNoopLogger())

	_, err := svc.GetTask(context.Background(), 5, 9)
	assertAPICode(t, err, http.StatusNotFound)
}

func TestTaskService_DeleteTask(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantCode int
		wantErr  bool
	}{
		{name: "deleted"},
		{name: "not found", storeErr: model.ErrNotFound, wantCode: http.StatusNotFound, wantErr: true},
		{name: "storage failure", storeErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockTaskStore{}
			store.On("Delete", mock.Anything, int64(9), int64(5)).Return(tt.storeErr)
			svc := NewTask(store, testutil.MakeNoopLogger())

			err := svc.DeleteTask(context.Background(), 5, 9)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantCode != 0 {
				assertAPICode(t, err, tt.wantCode)
			} else {
				assert.ErrorIs(t, err, tt.storeErr)
			}
		})
	}
}
