package eta

import (
	"context"
	"testing"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRegistry(t *testing.T) *Registry {
	db, err := database.OpenTestDB()
	require.NoError(t, err)
	return NewRegistry(db)
}

func TestRegistrySetUpserts(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "u1", 3, "09:00"))
	require.NoError(t, r.Set(ctx, "u1", 3, "10:00"))

	var count int64
	require.NoError(t, r.db.Model(&models.ETA{}).Where("user_id = ? AND area_id = ?", "u1", 3).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	value, ok, err := r.Get(ctx, "u1", 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "10:00", value)
}

func TestRegistryGetMissing(t *testing.T) {
	r := setupRegistry(t)

	value, ok, err := r.Effective(context.Background(), 99, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestRegistryKeysAreScopedPerUser(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "u1", 1, "09:00"))
	require.NoError(t, r.Set(ctx, "u2", 1, "11:00"))

	v1, _, err := r.Get(ctx, "u1", 1)
	require.NoError(t, err)
	v2, _, err := r.Get(ctx, "u2", 1)
	require.NoError(t, err)
	assert.Equal(t, "09:00", v1)
	assert.Equal(t, "11:00", v2)
}

func TestRegistryDeleteAndList(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "u1", 2, "09:00"))
	require.NoError(t, r.Set(ctx, "u1", 1, "08:00"))
	require.NoError(t, r.Delete(ctx, "u1", 2))

	rows, err := r.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(1), rows[0].AreaID)
}

func TestRegistryForAreas(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "u1", 1, "08:00"))
	require.NoError(t, r.Set(ctx, "u1", 2, "09:00-10:00"))
	require.NoError(t, r.Set(ctx, "u2", 3, "11:00"))

	got, err := r.ForAreas(ctx, "u1", []uint{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "08:00", 2: "09:00-10:00"}, etaTexts(got))

	empty, err := r.ForAreas(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRegistryShiftAll(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "u1", 1, "08:00"))
	require.NoError(t, r.Set(ctx, "u1", 2, "23:30-00:30"))
	require.NoError(t, r.Set(ctx, "u1", 3, "after lunch"))
	require.NoError(t, r.Set(ctx, "u2", 1, "08:00"))

	res, err := r.ShiftAll(ctx, "u1", time.Hour)
	require.NoError(t, err)
	assert.Len(t, res.Updated, 2)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, uint(3), res.Skipped[0].AreaID)

	got, err := r.ForAreas(ctx, "u1", []uint{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "09:00", 2: "00:30-01:30", 3: "after lunch"}, etaTexts(got))

	other, _, err := r.Get(ctx, "u2", 1)
	require.NoError(t, err)
	assert.Equal(t, "08:00", other)
}

func etaTexts(rows map[uint]models.ETA) map[uint]string {
	out := make(map[uint]string, len(rows))
	for id, row := range rows {
		out[id] = row.ETA
	}
	return out
}
