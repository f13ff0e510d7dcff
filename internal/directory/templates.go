package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/personalize"

	"gorm.io/gorm"
)

var ErrEmptyTemplate = errors.New("template needs at least one language variant")

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Get(ctx context.Context, id uint) (*models.Template, error) {
	var t models.Template
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound("template", id, err)
	}
	return &t, nil
}

// GetForUser returns the template when it belongs to userID or is global.
func (r *TemplateRepository) GetForUser(ctx context.Context, userID string, id uint) (*models.Template, error) {
	var t models.Template
	err := r.db.WithContext(ctx).
		Where("id = ? AND (user_id = ? OR is_global = ?)", id, userID, true).
		First(&t).Error
	if err != nil {
		return nil, notFound("template", id, err)
	}
	return &t, nil
}

// ListForUser returns the user's own templates and all global ones,
// favorites first.
func (r *TemplateRepository) ListForUser(ctx context.Context, userID string) ([]models.Template, error) {
	var templates []models.Template
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR is_global = ?", userID, true).
		Order("is_favorite DESC, is_default DESC, name").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// DefaultForUser returns the user's default template, if any.
func (r *TemplateRepository) DefaultForUser(ctx context.Context, userID string) (*models.Template, error) {
	var t models.Template
	err := r.db.WithContext(ctx).Where("user_id = ? AND is_default = ?", userID, true).First(&t).Error
	if err != nil {
		return nil, notFound("default template", 0, err)
	}
	return &t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *models.Template) error {
	if personalize.FromTemplate(*t).IsEmpty() {
		return ErrEmptyTemplate
	}
	t.IsDefault = false
	return r.db.WithContext(ctx).Create(t).Error
}

// Update replaces the text and name of a template owned by t.UserID.
func (r *TemplateRepository) Update(ctx context.Context, t *models.Template) error {
	if personalize.FromTemplate(*t).IsEmpty() {
		return ErrEmptyTemplate
	}
	res := r.db.WithContext(ctx).Model(&models.Template{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]interface{}{
			"name":             t.Name,
			"template_english": t.TemplateEnglish,
			"template_hebrew":  t.TemplateHebrew,
			"template_arabic":  t.TemplateArabic,
		})
	if res.Error != nil {
		return fmt.Errorf("update template %d: %w", t.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %d: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, userID string, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Template{})
	if res.Error != nil {
		return fmt.Errorf("delete template %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetDefault makes id the user's only default template.
func (r *TemplateRepository) SetDefault(ctx context.Context, userID string, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t models.Template
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
			return notFound("template", id, err)
		}
		if err := tx.Model(&models.Template{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&t).Update("is_default", true).Error
	})
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (r *TemplateRepository) ToggleFavorite(ctx context.Context, userID string, id uint) (bool, error) {
	var favorite bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t models.Template
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
			return notFound("template", id, err)
		}
		favorite = !t.IsFavorite
		return tx.Model(&t).Update("is_favorite", favorite).Error
	})
	return favorite, err
}
