package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/tasktracker-server/internal/model"
)

const taskColumns = `id, user_id, title, description, completed, due_date`

// ListByOwner returns every task of ownerID in insertion order.
func (t *TaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := t.store.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id`, ownerID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			task, err := scanTask(rows)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns one task owned by ownerID.
func (t *TaskStore) GetByID(ctx context.Context, id, ownerID int64) (model.Task, error) {
	var task model.Task
	err := t.store.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID,
		)
		var err error
		task, err = scanTask(row)
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// Create inserts a task and returns it with the assigned ID.
func (t *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	err := t.store.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			`INSERT INTO tasks (title, description, completed, due_date, user_id) VALUES (?, ?, ?, ?, ?)`,
			task.Title, nullString(task.Description), task.Completed, nullString(task.DueDate), task.OwnerID,
		)
		if err != nil {
			return err
		}
		task.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces the mutable fields of the task matching ID and owner.
func (t *TaskStore) Update(ctx context.Context, task model.Task) (model.Task, error) {
	var affected int64
	err := t.store.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			`UPDATE tasks SET title = ?, description = ?, completed = ?, due_date = ? WHERE id = ? AND user_id = ?`,
			task.Title, nullString(task.Description), task.Completed, nullString(task.DueDate), task.ID, task.OwnerID,
		)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return model.Task{}, model.ErrNotFound
	}
	return task, nil
}

// Delete removes the task matching ID and owner.
func (t *TaskStore) Delete(ctx context.Context, id, ownerID int64) error {
	var affected int64
	err := t.store.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task        model.Task
		description sql.NullString
		dueDate     sql.NullString
	)
	if err := row.Scan(&task.ID, &task.OwnerID, &task.Title, &description, &task.Completed, &dueDate); err != nil {
		return model.Task{}, err
	}
	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.String
	}
	return task, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
