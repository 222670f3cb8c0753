package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SobrietyClean = "clean"
	SobrietySlip  = "slip"
)

type SobrietyLog struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserAddictionID uuid.UUID `gorm:"type:uuid;not null;index:idx_sobriety_logs_user_addiction_date,priority:1" json:"user_addiction_id"`
	Date            time.Time `gorm:"type:date;not null;index:idx_sobriety_logs_user_addiction_date,priority:2" json:"date"`
	Status          string    `gorm:"size:10;not null" json:"status"`
	Reason          string    `gorm:"type:text;not null;default:''" json:"reason"`
	Note            string    `gorm:"type:text;not null;default:''" json:"note"`
	CreatedAt       time.Time `json:"created_at"`
}

func (SobrietyLog) TableName() string {
	return "sobriety_logs"
}

// Craving intensity and mood use the ranges the schema CHECK constraints enforce.
const (
	MinCravingIntensity = 1
	MaxCravingIntensity = 10
	MinMood             = 1
	MaxMood             = 5
)

// CravingLog and MoodLog are journal entries owned by a user. Aggregation
// happens client-side.
type CravingLog struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	UserAddictionID *uuid.UUID `gorm:"type:uuid" json:"user_addiction_id,omitempty"`
	Intensity       int        `gorm:"not null" json:"intensity"`
	Trigger         string     `gorm:"type:text;not null;default:''" json:"trigger"`
	Note            string     `gorm:"type:text;not null;default:''" json:"note"`
	LoggedAt        time.Time  `gorm:"not null;index" json:"logged_at"`
}

func (CravingLog) TableName() string {
	return "craving_logs"
}

type MoodLog struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood     int       `gorm:"not null" json:"mood"`
	Note     string    `gorm:"type:text;not null;default:''" json:"note"`
	LoggedAt time.Time `gorm:"not null;index" json:"logged_at"`
}

func (MoodLog) TableName() string {
	return "mood_logs"
}
