// Package eta stores the arrival estimate each user sets per area.
package eta

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Registry struct {
	db *gorm.DB
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Get returns the ETA for (userID, areaID). A missing row is reported with
// ok == false, not as an error.
func (r *Registry) Get(ctx context.Context, userID string, areaID uint) (string, bool, error) {
	var row models.ETA
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND area_id = ?", userID, areaID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get eta: %w", err)
	}
	return row.ETA, true, nil
}

// Effective looks up the ETA to use for one area. Not found is ok == false.
func (r *Registry) Effective(ctx context.Context, areaID uint, userID string) (string, bool, error) {
	return r.Get(ctx, userID, areaID)
}

// Set upserts the ETA on the (user, area) key.
func (r *Registry) Set(ctx context.Context, userID string, areaID uint, value string) error {
	row := models.ETA{UserID: userID, AreaID: areaID, ETA: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "area_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"eta", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("set eta: %w", err)
	}
	return nil
}

func (r *Registry) Delete(ctx context.Context, userID string, areaID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND area_id = ?", userID, areaID).
		Delete(&models.ETA{}).Error
	if err != nil {
		return fmt.Errorf("delete eta: %w", err)
	}
	return nil
}

func (r *Registry) List(ctx context.Context, userID string) ([]models.ETA, error) {
	var rows []models.ETA
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("area_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list etas: %w", err)
	}
	return rows, nil
}

// ForAreas loads the user's ETA rows for areaIDs keyed by area id.
func (r *Registry) ForAreas(ctx context.Context, userID string, areaIDs []uint) (map[uint]models.ETA, error) {
	out := make(map[uint]models.ETA, len(areaIDs))
	if len(areaIDs) == 0 {
		return out, nil
	}

	var rows []models.ETA
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND area_id IN ?", userID, areaIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load etas: %w", err)
	}
	for _, row := range rows {
		out[row.AreaID] = row
	}
	return out, nil
}

// ShiftResult reports a bulk shift.
type ShiftResult struct {
	Updated []models.ETA `json:"updated"`
	Skipped []models.ETA `json:"skipped"`
}

// ShiftAll moves every ETA of userID by d in one transaction. Rows that do
// not parse are skipped and left untouched.
func (r *Registry) ShiftAll(ctx context.Context, userID string, d time.Duration) (*ShiftResult, error) {
	result := &ShiftResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []models.ETA
		if err := tx.Where("user_id = ?", userID).Order("area_id").Find(&rows).Error; err != nil {
			return err
		}

		for _, row := range rows {
			w, err := Parse(row.ETA)
			if err != nil {
				log.WithFields(log.Fields{"user_id": userID, "area_id": row.AreaID, "eta": row.ETA}).
					Warn("Skipping malformed ETA during shift")
				result.Skipped = append(result.Skipped, row)
				continue
			}

			row.ETA = w.Shift(d).String()
			if err := tx.Model(&models.ETA{}).Where("id = ?", row.ID).Update("eta", row.ETA).Error; err != nil {
				return err
			}
			result.Updated = append(result.Updated, row)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shift etas: %w", err)
	}
	return result, nil
}
