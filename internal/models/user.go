package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is created during onboarding, either anonymously or linked to a
// Firebase account.
type User struct {
	ID                uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirebaseUID       *string                     `gorm:"size:128;uniqueIndex" json:"firebase_uid,omitempty"`
	Username          *string                     `gorm:"size:50" json:"username"`
	Anonymous         bool                        `gorm:"not null;default:true" json:"anonymous"`
	Intent            string                      `gorm:"type:text;not null;default:''" json:"intent"`
	IntentReasons     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"intent_reasons"`
	AvatarID          string                      `gorm:"size:50;not null;default:''" json:"avatar_id"`
	AvatarColor       string                      `gorm:"size:20;not null;default:''" json:"avatar_color"`
	AvatarURL         string                      `gorm:"type:text;not null;default:''" json:"avatar_url"`
	Bio               string                      `gorm:"type:text;not null;default:''" json:"bio"`
	Catchphrase       string                      `gorm:"size:140;not null;default:''" json:"catchphrase"`
	Country           string                      `gorm:"size:2;not null;default:''" json:"country"`
	UsernameChangedAt *time.Time                  `json:"username_changed_at,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
	DeletedAt         gorm.DeletedAt              `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
