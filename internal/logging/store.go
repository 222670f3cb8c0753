package logging

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"gorm.io/gorm"
)

// LogStore persists system log rows.
type LogStore interface {
	InsertSystemLogs(ctx context.Context, logs []models.SystemLog) error
	PurgeSystemLogs(ctx context.Context, before time.Time) (int64, error)
}

type GormLogStore struct {
	db *gorm.DB
}

func NewGormLogStore(db *gorm.DB) *GormLogStore {
	return &GormLogStore{db: db}
}

func (s *GormLogStore) InsertSystemLogs(ctx context.Context, logs []models.SystemLog) error {
	return s.db.WithContext(ctx).CreateInBatches(logs, batchSize).Error
}

func (s *GormLogStore) PurgeSystemLogs(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("timestamp < ?", before).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
