// Package orm provides a GORM-backed task storage implementation.
package orm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dtroode/tasktracker-server/database"
	"github.com/dtroode/tasktracker-server/internal/model"
)

var (
	_ model.UserStore = (*UserStore)(nil)
	_ model.TaskStore = (*TaskStore)(nil)
	_ model.Pinger    = (*Store)(nil)
)

type userRecord struct {
	ID    int64  `gorm:"primaryKey"`
	Email string `gorm:"not null;uniqueIndex"`
}

func (userRecord) TableName() string { return "users" }

func (u userRecord) toModel() model.User {
	return model.User{ID: u.ID, Email: u.Email}
}

type taskRecord struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description *string
	Completed   bool `gorm:"not null"`
	DueDate     *string
	UserID      int64 `gorm:"not null;index"`
}

func (taskRecord) TableName() string { return "tasks" }

func (t taskRecord) toModel() model.Task {
	return model.Task{
		ID:          t.ID,
		OwnerID:     t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
	}
}

func fromModel(task model.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		DueDate:     task.DueDate,
		UserID:      task.OwnerID,
	}
}

// Store owns the GORM handle shared by UserStore and TaskStore.
type Store struct {
	db *gorm.DB
}

// UserStore persists users through GORM.
type UserStore struct {
	store *Store
}

// TaskStore persists tasks through GORM.
type TaskStore struct {
	store *Store
}

func newConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// Open connects to postgres through GORM after applying migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if err := database.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), newConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithConn builds a store over an existing database/sql handle.
func NewWithConn(conn *sql.DB) (*Store, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), newConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Users() *UserStore {
	return &UserStore{store: s}
}

func (s *Store) Tasks() *TaskStore {
	return &TaskStore{store: s}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withConn pins a single pooled connection for fn; GORM releases it on return.
func (s *Store) withConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Connection(fn)
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var rec userRecord
	err := u.store.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Where("email = ?", email).Take(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return rec.toModel(), nil
}

func (u *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	var rec userRecord
	err := u.store.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Take(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return rec.toModel(), nil
}

func (u *UserStore) Create(ctx context.Context, email string) (model.User, error) {
	rec := userRecord{Email: email}
	err := u.store.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return rec.toModel(), nil
}

func (t *TaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	var recs []taskRecord
	err := t.store.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", ownerID).Order("id").Find(&recs).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, rec.toModel())
	}
	return tasks, nil
}

func (t *TaskStore) GetByID(ctx context.Context, id, ownerID int64) (model.Task, error) {
	var rec taskRecord
	err := t.store.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ? AND user_id = ?", id, ownerID).Take(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return rec.toModel(), nil
}

func (t *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	rec := fromModel(task)
	rec.ID = 0
	err := t.store.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return rec.toModel(), nil
}

func (t *TaskStore) Update(ctx context.Context, task model.Task) (model.Task, error) {
	var affected int64
	err := t.store.withConn(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&taskRecord{}).
			Where("id = ? AND user_id = ?", task.ID, task.OwnerID).
			Updates(map[string]any{
				"title":       task.Title,
				"description": task.Description,
				"completed":   task.Completed,
				"due_date":    task.DueDate,
			})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if affected == 0 {
		return model.Task{}, model.ErrNotFound
	}
	return task, nil
}

func (t *TaskStore) Delete(ctx context.Context, id, ownerID int64) error {
	var affected int64
	err := t.store.withConn(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&taskRecord{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
