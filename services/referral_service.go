package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/notifications"
	"gorm.io/gorm"
)

// RewardTier pairs a referral level with the cut of a deposit that level
// earns. The schedule is ordered by level and bounds how deep rewards reach:
// edges at levels beyond the last tier are ignored even if present.
type RewardTier struct {
	Level      int
	Percentage float64
}

var RewardSchedule = []RewardTier{
	{Level: 1, Percentage: 0.30},
	{Level: 2, Percentage: 0.03},
}

var ErrInvalidReferralCode = errors.New("invalid referral code")

// RecordReferral links a freshly registered user into the referral tree:
// a level-1 edge from the referral code's owner, and a level-2 edge from that
// owner's own referrer when one exists. A missing grandparent is not an error.
func RecordReferral(tx *gorm.DB, newUserID uuid.UUID, referralCode string) error {
	var referrer models.User
	if err := tx.Where("referral_code = ?", referralCode).First(&referrer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidReferralCode
		}
		return err
	}

	direct := models.Referral{
		ReferrerID:     referrer.ID,
		ReferredUserID: newUserID,
		Level:          1,
	}
	if err := tx.Create(&direct).Error; err != nil {
		return err
	}

	if referrer.ReferredByCode == nil || *referrer.ReferredByCode == "" {
		return nil
	}

	var grandparent models.User
	if err := tx.Where("referral_code = ?", *referrer.ReferredByCode).First(&grandparent).Error; err != nil {
		log.Printf("Skipping level-2 referral edge for user %s: %v", newUserID, err)
		return nil
	}

	indirect := models.Referral{
		ReferrerID:     grandparent.ID,
		ReferredUserID: newUserID,
		Level:          2,
	}
	return tx.Create(&indirect).Error
}

// RewardReferrers credits the reward schedule against an approved deposit.
// Each referrer is handled independently; one failed credit is logged and
// does not block the rest.
func RewardReferrers(txn models.Transaction) {
	var edges []models.Referral
	err := database.DB.Preload("Referrer").
		Where("referred_user_id = ?", txn.UserID).
		Order("level asc").
		Find(&edges).Error
	if err != nil {
		log.Printf("🔥 Failed to load referral edges for user %s: %v", txn.UserID, err)
		return
	}

	for _, edge := range edges {
		tier, ok := tierForLevel(edge.Level)
		if !ok {
			continue
		}

		reward := Round2(txn.Amount * tier.Percentage)
		referrer := edge.Referrer

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := Credit(tx, edge.ReferrerID, reward); err != nil {
				return err
			}
			row := models.ReferralReward{
				ReferrerID:     edge.ReferrerID,
				ReferredUserID: edge.ReferredUserID,
				Level:          edge.Level,
				RewardAmount:   reward,
				DepositAmount:  txn.Amount,
				Percentage:     tier.Percentage,
				TransactionID:  txn.ID,
			}
			return tx.Create(&row).Error
		})
		if err != nil {
			log.Printf("🔥 Failed to credit level-%d referral reward to %s: %v", edge.Level, edge.ReferrerID, err)
			continue
		}

		go notifications.SendEmail(
			referrer.FullName,
			referrer.Email,
			"You've Earned a Referral Reward!",
			fmt.Sprintf("<h1>Congratulations!</h1><p>A deposit by someone in your network has earned you a referral reward of ₦%.2f. It has been added to your balance.</p>", reward),
		)
	}
}

// ComputeReward returns the reward owed for an edge at the given level, and
// whether that level earns anything at all.
func ComputeReward(depositAmount float64, level int) (float64, bool) {
	tier, ok := tierForLevel(level)
	if !ok {
		return 0, false
	}
	return Round2(depositAmount * tier.Percentage), true
}

func tierForLevel(level int) (RewardTier, bool) {
	for _, tier := range RewardSchedule {
		if tier.Level == level {
			return tier, true
		}
	}
	return RewardTier{}, false
}
