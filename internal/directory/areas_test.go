package directory

import (
	"context"
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArea(t *testing.T) {
	tests := []struct {
		name    string
		area    models.Area
		wantErr error
	}{
		{"one language", models.Area{PreferredLanguage1: "he"}, nil},
		{"two languages", models.Area{PreferredLanguage1: "he", PreferredLanguage2: "ar"}, nil},
		{"second language only", models.Area{PreferredLanguage2: "en"}, nil},
		{"no language", models.Area{PreferredLanguage1: " "}, ErrNoPreferredLanguage},
		{"same language twice", models.Area{PreferredLanguage1: "ar", PreferredLanguage2: " ar"}, ErrDuplicateLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.area
			err := ValidateArea(&a)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAreaRepositoryCRUD(t *testing.T) {
	repo := NewAreaRepository(setupTestDB(t))
	ctx := context.Background()

	area := &models.Area{NameEnglish: "Akko", NameHebrew: "עכו", PreferredLanguage1: "he", PreferredLanguage2: "ar"}
	require.NoError(t, repo.Create(ctx, area))
	require.NotZero(t, area.ID)

	got, err := repo.Get(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, "עכו", got.NameHebrew)

	got.NameArabic = "عكا"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.Get(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, "عكا", again.NameArabic)
	assert.False(t, again.CreatedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, area.ID))
	_, err = repo.Get(ctx, area.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, area.ID), ErrNotFound)
}

func TestAreaRepositoryRejectsInvalid(t *testing.T) {
	repo := NewAreaRepository(setupTestDB(t))
	err := repo.Create(context.Background(), &models.Area{NameEnglish: "Nowhere"})
	assert.ErrorIs(t, err, ErrNoPreferredLanguage)
}

func TestAreaRepositoryGetMany(t *testing.T) {
	repo := NewAreaRepository(setupTestDB(t))
	ctx := context.Background()

	a := &models.Area{NameEnglish: "A", PreferredLanguage1: "en"}
	b := &models.Area{NameEnglish: "B", PreferredLanguage1: "he"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetMany(ctx, []uint{a.ID, b.ID, 999})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "B", got[b.ID].NameEnglish)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
