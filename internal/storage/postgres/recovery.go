package postgres

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

func (s *Store) ListAddictions(ctx context.Context) ([]models.Addiction, error) {
	var addictions []models.Addiction
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&addictions).Error; err != nil {
		return nil, translate(err)
	}
	return addictions, nil
}

func (s *Store) GetAddiction(ctx context.Context, id uuid.UUID) (*models.Addiction, error) {
	var addiction models.Addiction
	if err := s.db.WithContext(ctx).First(&addiction, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &addiction, nil
}

func (s *Store) CreateAddiction(ctx context.Context, addiction *models.Addiction) error {
	return translate(s.db.WithContext(ctx).Create(addiction).Error)
}

// InsertAddictionsIgnoringConflicts is INSERT ... ON CONFLICT (name) DO NOTHING.
func (s *Store) InsertAddictionsIgnoringConflicts(ctx context.Context, addictions []models.Addiction) (int64, error) {
	if len(addictions) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&addictions)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) CreateUserAddiction(ctx context.Context, ua *models.UserAddiction) error {
	return translate(s.db.WithContext(ctx).Omit("Addiction").Create(ua).Error)
}

func (s *Store) GetUserAddiction(ctx context.Context, id uuid.UUID) (*models.UserAddiction, error) {
	var ua models.UserAddiction
	if err := s.db.WithContext(ctx).Preload("Addiction").First(&ua, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &ua, nil
}

func (s *Store) ListUserAddictions(ctx context.Context, userID uuid.UUID) ([]models.UserAddiction, error) {
	var links []models.UserAddiction
	err := s.db.WithContext(ctx).
		Preload("Addiction").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		return nil, translate(err)
	}
	return links, nil
}

func (s *Store) CreateSobrietyLog(ctx context.Context, log *models.SobrietyLog) error {
	return translate(s.db.WithContext(ctx).Create(log).Error)
}

func (s *Store) ListSobrietyLogs(ctx context.Context, userAddictionID uuid.UUID) ([]models.SobrietyLog, error) {
	var logs []models.SobrietyLog
	err := s.db.WithContext(ctx).
		Where("user_addiction_id = ?", userAddictionID).
		Order("date DESC, created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (s *Store) CreateCravingLog(ctx context.Context, log *models.CravingLog) error {
	return translate(s.db.WithContext(ctx).Create(log).Error)
}

func (s *Store) ListCravingLogs(ctx context.Context, userID uuid.UUID) ([]models.CravingLog, error) {
	var logs []models.CravingLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (s *Store) CreateMoodLog(ctx context.Context, log *models.MoodLog) error {
	return translate(s.db.WithContext(ctx).Create(log).Error)
}

func (s *Store) ListMoodLogs(ctx context.Context, userID uuid.UUID) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}
