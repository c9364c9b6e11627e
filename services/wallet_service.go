package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/sheratonhq/sheraton/models"
	"gorm.io/gorm"
)

// Every balance mutation in the system goes through Credit or Debit so that
// all five money-moving flows (deposit approval, investment purchase, daily
// payout, referral reward, withdrawal) share one locking discipline instead
// of doing their own read-modify-write.

var ErrInsufficientBalance = errors.New("insufficient balance")

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Credit atomically adds amount to the user's balance.
func Credit(tx *gorm.DB, userID uuid.UUID, amount float64) error {
	result := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Debit atomically subtracts amount from the user's balance. The balance
// guard lives in the WHERE clause, so a concurrent debit can never drive the
// balance negative.
func Debit(tx *gorm.DB, userID uuid.UUID, amount float64) error {
	result := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientBalance
	}
	return nil
}
