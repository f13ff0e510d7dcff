package directory

import (
	"context"
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepositoryListForUser(t *testing.T) {
	repo := NewTemplateRepository(setupTestDB(t))
	ctx := context.Background()

	own := &models.Template{UserID: "u1", Name: "b-own", TemplateEnglish: "hi"}
	fav := &models.Template{UserID: "u1", Name: "z-fav", TemplateHebrew: "שלום", IsFavorite: true}
	global := &models.Template{Name: "a-global", TemplateArabic: "مرحبا", IsGlobal: true}
	foreign := &models.Template{UserID: "u2", Name: "other", TemplateEnglish: "x"}
	for _, tmpl := range []*models.Template{own, fav, global, foreign} {
		require.NoError(t, repo.Create(ctx, tmpl))
	}

	list, err := repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "z-fav", list[0].Name)
	assert.Equal(t, "a-global", list[1].Name)
	assert.Equal(t, "b-own", list[2].Name)

	_, err = repo.GetForUser(ctx, "u1", global.ID)
	assert.NoError(t, err)
	_, err = repo.GetForUser(ctx, "u1", foreign.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateRepositoryRejectsEmpty(t *testing.T) {
	repo := NewTemplateRepository(setupTestDB(t))
	err := repo.Create(context.Background(), &models.Template{UserID: "u1", Name: "blank"})
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestTemplateRepositorySetDefault(t *testing.T) {
	repo := NewTemplateRepository(setupTestDB(t))
	ctx := context.Background()

	first := &models.Template{UserID: "u1", Name: "first", TemplateEnglish: "1"}
	second := &models.Template{UserID: "u1", Name: "second", TemplateEnglish: "2"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.SetDefault(ctx, "u1", first.ID))
	require.NoError(t, repo.SetDefault(ctx, "u1", second.ID))

	def, err := repo.DefaultForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	var defaults int64
	require.NoError(t, repo.db.Model(&models.Template{}).Where("user_id = ? AND is_default = ?", "u1", true).Count(&defaults).Error)
	assert.Equal(t, int64(1), defaults)

	assert.ErrorIs(t, repo.SetDefault(ctx, "u2", first.ID), ErrNotFound)
}

func TestTemplateRepositoryToggleFavoriteAndUpdate(t *testing.T) {
	repo := NewTemplateRepository(setupTestDB(t))
	ctx := context.Background()

	tmpl := &models.Template{UserID: "u1", Name: "t", TemplateEnglish: "old"}
	require.NoError(t, repo.Create(ctx, tmpl))

	fav, err := repo.ToggleFavorite(ctx, "u1", tmpl.ID)
	require.NoError(t, err)
	assert.True(t, fav)
	fav, err = repo.ToggleFavorite(ctx, "u1", tmpl.ID)
	require.NoError(t, err)
	assert.False(t, fav)

	tmpl.TemplateEnglish = "new"
	require.NoError(t, repo.Update(ctx, tmpl))
	got, err := repo.Get(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.TemplateEnglish)

	require.NoError(t, repo.Delete(ctx, "u1", tmpl.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "u1", tmpl.ID), ErrNotFound)
}
