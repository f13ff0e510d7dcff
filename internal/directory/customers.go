package directory

import (
	"context"
	"fmt"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerFilter narrows ListForUser. Empty slices mean no restriction.
type CustomerFilter struct {
	IDs     []uint
	AreaIDs []uint
}

// ListForUser returns the user's customers. When f.IDs is set the result
// follows the order of f.IDs; otherwise it is ordered by id.
func (r *CustomerRepository) ListForUser(ctx context.Context, userID string, f CustomerFilter) ([]models.Customer, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(f.IDs) > 0 {
		q = q.Where("id IN ?", f.IDs)
	}
	if len(f.AreaIDs) > 0 {
		q = q.Where("area_id IN ?", f.AreaIDs)
	}

	var customers []models.Customer
	if err := q.Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	if len(f.IDs) == 0 {
		return customers, nil
	}
	byID := make(map[uint]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	ordered := make([]models.Customer, 0, len(customers))
	for _, id := range f.IDs {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *CustomerRepository) Get(ctx context.Context, userID string, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		return nil, notFound("customer", id, err)
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	existing, err := r.Get(ctx, c.UserID, c.ID)
	if err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, userID string, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Customer{})
	if res.Error != nil {
		return fmt.Errorf("delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return nil
}
