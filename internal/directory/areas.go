package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

var (
	ErrNoPreferredLanguage = errors.New("area needs at least one preferred language")
	ErrDuplicateLanguage   = errors.New("preferred_language_2 must differ from preferred_language_1")
)

// AreaReader is the read side of the area directory.
type AreaReader interface {
	Get(ctx context.Context, id uint) (*models.Area, error)
	GetMany(ctx context.Context, ids []uint) (map[uint]models.Area, error)
}

// AreaStore is the full area directory used by administrative handlers.
type AreaStore interface {
	AreaReader
	List(ctx context.Context) ([]models.Area, error)
	Create(ctx context.Context, a *models.Area) error
	Update(ctx context.Context, a *models.Area) error
	Delete(ctx context.Context, id uint) error
}

type AreaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// ValidateArea trims the language tags and checks the area invariants.
func ValidateArea(a *models.Area) error {
	a.PreferredLanguage1 = strings.TrimSpace(a.PreferredLanguage1)
	a.PreferredLanguage2 = strings.TrimSpace(a.PreferredLanguage2)

	err := validate.Struct(a)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	switch verrs[0].Tag() {
	case "required_without":
		return ErrNoPreferredLanguage
	case "nefield":
		return ErrDuplicateLanguage
	}
	return fmt.Errorf("invalid area: %w", err)
}

func (r *AreaRepository) Get(ctx context.Context, id uint) (*models.Area, error) {
	var area models.Area
	if err := r.db.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, notFound("area", id, err)
	}
	return &area, nil
}

// GetMany loads the listed areas. Ids without a row are absent from the map.
func (r *AreaRepository) GetMany(ctx context.Context, ids []uint) (map[uint]models.Area, error) {
	out := make(map[uint]models.Area, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var areas []models.Area
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("load areas: %w", err)
	}
	for _, a := range areas {
		out[a.ID] = a
	}
	return out, nil
}

func (r *AreaRepository) List(ctx context.Context) ([]models.Area, error) {
	var areas []models.Area
	if err := r.db.WithContext(ctx).Order("name_english").Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

func (r *AreaRepository) Create(ctx context.Context, a *models.Area) error {
	if err := ValidateArea(a); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AreaRepository) Update(ctx context.Context, a *models.Area) error {
	if err := ValidateArea(a); err != nil {
		return err
	}
	existing, err := r.Get(ctx, a.ID)
	if err != nil {
		return err
	}
	a.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AreaRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Area{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete area %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("area %d: %w", id, ErrNotFound)
	}
	return nil
}
