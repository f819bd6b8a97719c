package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/tasktracker-server/internal/config"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	stores, err := Open(ctx, config.Database{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "tasks.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close() })

	assert.NotNil(t, stores.Users)
	assert.NotNil(t, stores.Tasks)
	assert.NoError(t, stores.Pinger.Ping(ctx))

	user, err := stores.Users.Create(ctx, "user@example.com")
	require.NoError(t, err)
	tasks, err := stores.Tasks.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Database{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestStores_CloseNil(t *testing.T) {
	var s *Stores
	assert.NoError(t, s.Close())
}
