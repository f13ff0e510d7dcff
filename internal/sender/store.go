package sender

import (
	"context"
	"fmt"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"gorm.io/gorm"
)

// ProcessStore keeps the process ids returned by the background service.
type ProcessStore struct {
	db *gorm.DB
}

func NewProcessStore(db *gorm.DB) *ProcessStore {
	return &ProcessStore{db: db}
}

func (s *ProcessStore) Record(ctx context.Context, p *models.SendProcess) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("record send process: %w", err)
	}
	return nil
}

// ListForUser returns the user's processes, newest first.
func (s *ProcessStore) ListForUser(ctx context.Context, userID string, limit int) ([]models.SendProcess, error) {
	var rows []models.SendProcess
	q := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list send processes: %w", err)
	}
	return rows, nil
}
