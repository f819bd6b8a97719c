// Package repository selects and opens the configured task storage backend.
package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/repository/orm"
	"github.com/dtroode/tasktracker-server/internal/repository/postgres"
	"github.com/dtroode/tasktracker-server/internal/repository/sqlite"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverGORM     = "gorm"
)

// Stores bundles the user and task stores of one backend.
type Stores struct {
	Users  model.UserStore
	Tasks  model.TaskStore
	Pinger model.Pinger
	closer io.Closer
}

// Close releases the backend handle.
func (s *Stores) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open connects to the backend named by cfg.Driver and applies migrations.
func Open(ctx context.Context, cfg config.Database) (*Stores, error) {
	switch cfg.Driver {
	case DriverPostgres:
		conn, err := postgres.NewConection(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  postgres.NewUserRepository(conn),
			Tasks:  postgres.NewTaskRepository(conn),
			Pinger: conn,
			closer: conn,
		}, nil
	case DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLite(store), nil
	case DriverGORM:
		store, err := orm.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  store.Users(),
			Tasks:  store.Tasks(),
			Pinger: store,
			closer: store,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewSQLite wraps an opened SQLite store.
func NewSQLite(store *sqlite.Store) *Stores {
	return &Stores{
		Users:  store.Users(),
		Tasks:  store.Tasks(),
		Pinger: store,
		closer: store,
	}
}
