package models

import (
	"time"

	"github.com/google/uuid"
)

type Withdrawal struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        float64    `gorm:"type:numeric(12,2);not null" json:"amount"`
	Fee           float64    `gorm:"type:numeric(12,2);not null" json:"fee"`
	NetAmount     float64    `gorm:"type:numeric(12,2);not null" json:"net_amount"`
	BankName      string     `gorm:"size:100;not null" json:"bank_name"`
	AccountNumber string     `gorm:"size:20;not null" json:"account_number"`
	AccountName   string     `gorm:"size:255;not null" json:"account_name"`
	Status        string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Reference     string     `gorm:"size:50;not null;unique" json:"reference"`
	AdminNotes    *string    `gorm:"type:text" json:"admin_notes"`
	ProcessedAt   *time.Time `json:"processed_at"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminFee is the platform's revenue record for a withdrawal charge, written
// alongside the withdrawal at initiation.
type AdminFee struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WithdrawalID uuid.UUID `gorm:"type:uuid;not null;index" json:"withdrawal_id"`
	Amount       float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Purpose      string    `gorm:"size:50;not null;default:'withdrawal_fee'" json:"purpose"`

	CreatedAt time.Time `json:"created_at"`
}
