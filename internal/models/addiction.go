package models

import (
	"time"

	"github.com/google/uuid"
)

type Addiction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Icon      string    `gorm:"size:20;not null;default:''" json:"icon"`
	IsCustom  bool      `gorm:"not null;default:false" json:"is_custom"`
	CreatedAt time.Time `json:"created_at"`
}

func (Addiction) TableName() string {
	return "addictions"
}

// UserAddiction links a user to an addiction they are recovering from.
type UserAddiction struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_addictions_user_addiction,priority:1" json:"user_id"`
	AddictionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_addictions_user_addiction,priority:2" json:"addiction_id"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	Active      bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	Addiction   *Addiction `gorm:"foreignKey:AddictionID" json:"addiction,omitempty"`
}

func (UserAddiction) TableName() string {
	return "user_addictions"
}
