package models

import (
	"time"

	"github.com/google/uuid"
)

// Referral is one edge of the referral tree. Level 1 is the direct referrer,
// level 2 the referrer's own referrer. Rewards never reach deeper levels.
type Referral struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReferrerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"referrer_id"`
	ReferredUserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_referred_level" json:"referred_user_id"`
	Level          int       `gorm:"not null;uniqueIndex:idx_referred_level" json:"level"`

	Referrer     User `gorm:"foreignkey:ReferrerID" json:"-"`
	ReferredUser User `gorm:"foreignkey:ReferredUserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type ReferralReward struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReferrerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"referrer_id"`
	ReferredUserID uuid.UUID `gorm:"type:uuid;not null" json:"referred_user_id"`
	Level          int       `gorm:"not null" json:"level"`
	RewardAmount   float64   `gorm:"type:numeric(12,2);not null" json:"reward_amount"`
	DepositAmount  float64   `gorm:"type:numeric(12,2);not null" json:"deposit_amount"`
	Percentage     float64   `gorm:"type:numeric(5,4);not null" json:"percentage"`
	TransactionID  uuid.UUID `gorm:"type:uuid;not null" json:"transaction_id"`

	Referrer User `gorm:"foreignkey:ReferrerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
