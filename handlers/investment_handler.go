package handlers

import (
	"errors"
	"time"

	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvestRequest struct {
	PlanID string `json:"plan_id" validate:"required,uuid4"`
}

func ListPlans(c *fiber.Ctx) error {
	var plans []models.InvestmentPlan
	if err := database.DB.Where("is_active = ?", true).Order("price asc").Find(&plans).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(plans)
}

// InvestInPlan debits the plan price and opens the investment in one
// transaction, so a failed insert can never leave the account under-credited.
func InvestInPlan(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req InvestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var plan models.InvestmentPlan
	if err := database.DB.Where("id = ? AND is_active = ?", req.PlanID, true).First(&plan).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investment plan not found"})
	}

	var investment models.Investment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
			return errors.New("user profile not found")
		}
		if user.Balance < plan.Price {
			return services.ErrInsufficientBalance
		}

		if err := services.Debit(tx, userID, plan.Price); err != nil {
			return err
		}

		now := time.Now()
		nextPayout := now.Add(24 * time.Hour)
		investment = models.Investment{
			UserID:         userID,
			PlanName:       plan.Name,
			AmountInvested: plan.Price,
			DailyIncome:    plan.DailyIncome,
			TotalIncome:    plan.TotalIncome,
			EarningsToDate: 0,
			StartDate:      now,
			EndDate:        now.AddDate(0, 0, plan.DurationDays),
			NextPayoutAt:   &nextPayout,
			Status:         "active",
		}
		return tx.Create(&investment).Error
	})
	if err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient balance"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create investment"})
	}

	return c.Status(fiber.StatusCreated).JSON(investment)
}

func ListMyInvestments(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var investments []models.Investment
	database.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&investments)

	return c.JSON(investments)
}
