package models

import (
	"time"

	"github.com/google/uuid"
)

type Investment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanName       string     `gorm:"size:100;not null" json:"plan_name"`
	AmountInvested float64    `gorm:"type:numeric(12,2);not null" json:"amount_invested"`
	DailyIncome    float64    `gorm:"type:numeric(12,2);not null" json:"daily_income"`
	TotalIncome    float64    `gorm:"type:numeric(12,2);not null" json:"total_income"`
	EarningsToDate float64    `gorm:"type:numeric(12,2);not null;default:0.00" json:"earnings_to_date"`
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	EndDate        time.Time  `gorm:"not null" json:"end_date"`
	LastPayoutAt   *time.Time `json:"last_payout_at"`
	NextPayoutAt   *time.Time `gorm:"index" json:"next_payout_at"`
	Status         string     `gorm:"size:20;not null;default:'active'" json:"status"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
