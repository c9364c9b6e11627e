package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction records a deposit request from initiation through admin approval.
type Transaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type          string     `gorm:"size:20;not null;default:'deposit'" json:"type"`
	Amount        float64    `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status        string     `gorm:"size:20;not null;default:'initiated'" json:"status"`
	Reference     string     `gorm:"size:50;not null;unique" json:"reference"`
	SenderBank    *string    `gorm:"size:100" json:"sender_bank"`
	SenderName    *string    `gorm:"size:255" json:"sender_name"`
	ProofURL      *string    `gorm:"size:255" json:"proof_url"`
	BankAccountID *uuid.UUID `gorm:"type:uuid" json:"bank_account_id"`
	AdminNotes    *string    `gorm:"type:text" json:"admin_notes"`
	ProcessedAt   *time.Time `json:"processed_at"`

	User        User        `gorm:"foreignkey:UserID" json:"-"`
	BankAccount BankAccount `gorm:"foreignkey:BankAccountID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
