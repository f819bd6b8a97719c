package model

import "context"

// TaskStore defines persistence operations for tasks. Every operation on an
// existing task is scoped by both task ID and owner ID.
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Task, error)
	GetByID(ctx context.Context, id, ownerID int64) (Task, error)
	Create(ctx context.Context, task Task) (Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// Task represents a stored task entity.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description *string
	Completed   bool
	DueDate     *string
}

// TaskFields carries the client-replaceable fields of a task.
type TaskFields struct {
	Title       string
	Description *string
	Completed   bool
	DueDate     *string
}

// Apply copies fields onto the task, leaving ID and OwnerID untouched.
func (f TaskFields) Apply(task Task) Task {
	task.Title = f.Title
	task.Description = f.Description
	task.Completed = f.Completed
	task.DueDate = f.DueDate
	return task
}
