package handlers

import (
	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/gofiber/fiber/v2"
)

// GetMyReferrals returns the caller's referral code, network counts per
// level, and the rewards earned so far.
func GetMyReferrals(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var directCount, indirectCount int64
	database.DB.Model(&models.Referral{}).Where("referrer_id = ? AND level = ?", userID, 1).Count(&directCount)
	database.DB.Model(&models.Referral{}).Where("referrer_id = ? AND level = ?", userID, 2).Count(&indirectCount)

	var totalEarned float64
	database.DB.Model(&models.ReferralReward{}).
		Where("referrer_id = ?", userID).
		Select("COALESCE(SUM(reward_amount), 0)").
		Row().Scan(&totalEarned)

	var rewards []models.ReferralReward
	database.DB.Where("referrer_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&rewards)

	return c.JSON(fiber.Map{
		"referral_code":      user.ReferralCode,
		"direct_referrals":   directCount,
		"indirect_referrals": indirectCount,
		"total_earned":       totalEarned,
		"rewards":            rewards,
	})
}
