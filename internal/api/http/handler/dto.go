package handler

import "github.com/dtroode/tasktracker-server/internal/model"

type taskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
}

func (r taskRequest) fields() model.TaskFields {
	return model.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
	}
}

// taskResponse always carries every field, nulls included.
type taskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
	UserID      int64   `json:"user_id"`
}

func newTaskResponse(task model.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		DueDate:     task.DueDate,
		UserID:      task.OwnerID,
	}
}

type registerRequest struct {
	Email string `json:"email"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
