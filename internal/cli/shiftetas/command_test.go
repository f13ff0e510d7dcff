package shiftetas

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/eta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestShiftETAsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etas.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)

	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	registry := eta.NewRegistry(db)
	require.NoError(t, registry.Set(ctx, "u1", 1, "09:00"))
	require.NoError(t, registry.Set(ctx, "u1", 2, "23:30-00:15"))
	require.NoError(t, registry.Set(ctx, "u2", 1, "10:00"))

	require.NoError(t, execute(t, "--user", "u1", "--minutes", "90"))

	got, ok, err := registry.Get(ctx, "u1", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "10:30", got)

	got, _, err = registry.Get(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, "01:00-01:45", got)

	got, _, err = registry.Get(ctx, "u2", 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got)
}

func TestShiftETAsCommandDefaultsToOneHour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etas.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)

	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	registry := eta.NewRegistry(db)
	require.NoError(t, registry.Set(context.Background(), "u1", 1, "09:00"))

	require.NoError(t, execute(t, "-u", "u1"))

	got, _, err := registry.Get(context.Background(), "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got)
}

func TestShiftETAsCommandRequiresUser(t *testing.T) {
	err := execute(t, "--minutes", "30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user")
}
