package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, due_date
		FROM tasks
		WHERE user_id = $1
		ORDER BY id`

	tasks := make([]model.Task, 0)
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, ownerID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var task model.Task
			err := rows.Scan(
				&task.ID, &task.OwnerID, &task.Title, &task.Description,
				&task.Completed, &task.DueDate,
			)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id, ownerID int64) (model.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, due_date
		FROM tasks
		WHERE id = $1 AND user_id = $2`

	var task model.Task
	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, id, ownerID).Scan(
			&task.ID, &task.OwnerID, &task.Title, &task.Description,
			&task.Completed, &task.DueDate,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `
		INSERT INTO tasks (title, description, completed, due_date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query,
			task.Title, task.Description, task.Completed, task.DueDate, task.OwnerID,
		).Scan(&task.ID)
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, due_date = $4
		WHERE id = $5 AND user_id = $6`

	var affected int64
	err := r.db.WithConn(ctx, func(q Querier) error {
		cmd, err := q.Exec(ctx, query,
			task.Title, task.Description, task.Completed, task.DueDate, task.ID, task.OwnerID,
		)
		if err != nil {
			return err
		}
		affected = cmd.RowsAffected()
		return nil
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if affected == 0 {
		return model.Task{}, model.ErrNotFound
	}

	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	var affected int64
	err := r.db.WithConn(ctx, func(q Querier) error {
		cmd, err := q.Exec(ctx, query, id, ownerID)
		if err != nil {
			return err
		}
		affected = cmd.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
