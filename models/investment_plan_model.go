package models

import (
	"time"

	"github.com/google/uuid"
)

type InvestmentPlan struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:100;not null;unique" json:"name"`
	Price        float64   `gorm:"type:numeric(12,2);not null" json:"price"`
	DailyIncome  float64   `gorm:"type:numeric(12,2);not null" json:"daily_income"`
	TotalIncome  float64   `gorm:"type:numeric(12,2);not null" json:"total_income"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	Risk         string    `gorm:"size:20" json:"risk"`
	Volatility   string    `gorm:"size:20" json:"volatility"`
	Description  *string   `gorm:"type:text" json:"description"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
