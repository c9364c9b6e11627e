package models

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount is a platform receiving account shown to depositors. Only one
// account is active at a time.
type BankAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BankName      string    `gorm:"size:100;not null" json:"bank_name"`
	AccountNumber string    `gorm:"size:20;not null" json:"account_number"`
	AccountName   string    `gorm:"size:255;not null" json:"account_name"`
	IsActive      bool      `gorm:"default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
