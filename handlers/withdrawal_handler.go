package handlers

import (
	"errors"
	"log"

	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/notifications"
	"github.com/sheratonhq/sheraton/services"
	"github.com/sheratonhq/sheraton/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const minimumWithdrawalAmount = 1000.00
const withdrawalFeeRate = 0.10

var errProfileNotFound = errors.New("user profile not found")

// withdrawalErrorResponse maps an initiation failure to a client-safe status
// and message. Datastore errors never reach the caller verbatim; they are
// logged server-side and reported generically.
func withdrawalErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInsufficientBalance):
		return fiber.StatusBadRequest, "Insufficient balance"
	case errors.Is(err, errProfileNotFound):
		return fiber.StatusNotFound, "User profile not found"
	default:
		return fiber.StatusInternalServerError, "Failed to create withdrawal request"
	}
}

type WithdrawalRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	BankName      string  `json:"bank_name" validate:"required"`
	AccountNumber string  `json:"account_number" validate:"required"`
	AccountName   string  `json:"account_name" validate:"required"`
}

// WithdrawalFee returns the 10% charge and the net amount paid out, both
// rounded to 2 decimal places.
func WithdrawalFee(amount float64) (fee, net float64) {
	fee = services.Round2(amount * withdrawalFeeRate)
	net = services.Round2(amount - fee)
	return fee, net
}

// InitiateWithdrawal reserves the funds immediately: the gross amount is
// debited inside the same transaction that records the pending withdrawal,
// and refunded only if an admin rejects the request.
func InitiateWithdrawal(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req WithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Amount < minimumWithdrawalAmount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Minimum withdrawal is ₦1,000"})
	}

	fee, net := WithdrawalFee(req.Amount)

	var withdrawal models.Withdrawal
	var user models.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
			return errProfileNotFound
		}
		if user.Balance < req.Amount {
			return services.ErrInsufficientBalance
		}

		if err := services.Debit(tx, userID, req.Amount); err != nil {
			return err
		}

		withdrawal = models.Withdrawal{
			UserID:        userID,
			Amount:        req.Amount,
			Fee:           fee,
			NetAmount:     net,
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			AccountName:   req.AccountName,
			Status:        "pending",
			Reference:     utils.GenerateWithdrawalReference(),
		}
		if err := tx.Create(&withdrawal).Error; err != nil {
			return err
		}

		adminFee := models.AdminFee{
			WithdrawalID: withdrawal.ID,
			Amount:       fee,
			Purpose:      "withdrawal_fee",
		}
		return tx.Create(&adminFee).Error
	})
	if err != nil {
		status, message := withdrawalErrorResponse(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("🔥 Failed to create withdrawal for user %s: %v", userID, err)
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}

	go notifications.SendWithdrawalEmailToAdmin(
		user.FullName, user.Email, withdrawal.Reference,
		withdrawal.NetAmount, withdrawal.BankName, withdrawal.AccountNumber, withdrawal.AccountName,
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Withdrawal request submitted successfully.",
		"reference":  withdrawal.Reference,
		"amount":     withdrawal.Amount,
		"fee":        withdrawal.Fee,
		"net_amount": withdrawal.NetAmount,
		"status":     withdrawal.Status,
	})
}

func ListMyWithdrawals(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var withdrawals []models.Withdrawal
	database.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&withdrawals)

	return c.JSON(withdrawals)
}
