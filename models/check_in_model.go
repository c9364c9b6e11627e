package models

import (
	"time"

	"github.com/google/uuid"
)

type CheckIn struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_checkin_day" json:"user_id"`
	Day    time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_checkin_day" json:"day"`
	Streak int       `gorm:"not null;default:1" json:"streak"`
	Bonus  float64   `gorm:"type:numeric(12,2);not null" json:"bonus"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
