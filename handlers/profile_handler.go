package handlers

import (
	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/services"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName      *string `json:"full_name"`
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	AccountName   *string `json:"account_name"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.BankName != nil {
		user.BankName = req.BankName
	}
	if req.AccountNumber != nil {
		user.AccountNumber = req.AccountNumber
	}
	if req.AccountName != nil {
		user.AccountName = req.AccountName
	}

	database.DB.Save(&user)

	return c.JSON(user)
}

// GetMyPortfolio summarises the caller's wallet and investment position.
func GetMyPortfolio(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var activeCount int64
	database.DB.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Count(&activeCount)

	var totalInvested, totalEarned float64
	database.DB.Model(&models.Investment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount_invested), 0)").
		Row().Scan(&totalInvested)
	database.DB.Model(&models.Investment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(earnings_to_date), 0)").
		Row().Scan(&totalEarned)

	var investments []models.Investment
	database.DB.Where("user_id = ? AND status = ?", userID, "active").
		Order("created_at desc").
		Find(&investments)

	return c.JSON(fiber.Map{
		"balance":            user.Balance,
		"active_investments": activeCount,
		"total_invested":     totalInvested,
		"total_earned":       totalEarned,
		"investments":        investments,
	})
}

// RequestStatement renders the caller's account statement to PDF and returns
// a link to the uploaded document.
func RequestStatement(c *fiber.Ctx) error {
	userID := currentUserID(c)

	url, err := services.GenerateAccountStatement(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate statement"})
	}

	return c.JSON(fiber.Map{"statement_url": url})
}
