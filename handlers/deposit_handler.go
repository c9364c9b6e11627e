package handlers

import (
	"time"

	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/notifications"
	"github.com/sheratonhq/sheraton/utils"
	"github.com/sheratonhq/sheraton/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const minimumDepositAmount = 1000.00

type InitiateDepositRequest struct {
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	SenderBank string  `json:"sender_bank" validate:"required"`
	SenderName string  `json:"sender_name" validate:"required"`
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

func InitiateDeposit(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req InitiateDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Amount < minimumDepositAmount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Minimum deposit is ₦1,000"})
	}

	var receivingAccount models.BankAccount
	if err := database.DB.Where("is_active = ?", true).First(&receivingAccount).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "No receiving bank account is currently available"})
	}

	txn := models.Transaction{
		UserID:        userID,
		Type:          "deposit",
		Amount:        req.Amount,
		Status:        "initiated",
		Reference:     utils.GenerateDepositReference(),
		SenderBank:    &req.SenderBank,
		SenderName:    &req.SenderName,
		BankAccountID: &receivingAccount.ID,
	}
	if err := database.DB.Create(&txn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create deposit request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reference": txn.Reference,
		"amount":    txn.Amount,
		"payment_instructions": fiber.Map{
			"bank_name":      receivingAccount.BankName,
			"account_number": receivingAccount.AccountNumber,
			"account_name":   receivingAccount.AccountName,
			"narration":      txn.Reference,
			"expires_at":     time.Now().Add(24 * time.Hour),
		},
	})
}

type ConfirmDepositRequest struct {
	ProofURL *string `json:"proof_url"`
}

// ConfirmDeposit moves a deposit to pending once the user says the transfer
// has been made, and alerts the admin to verify it.
func ConfirmDeposit(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reference := c.Params("reference")

	var req ConfirmDepositRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	var txn models.Transaction
	if err := database.DB.Preload("User").Where("reference = ? AND user_id = ?", reference, userID).First(&txn).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deposit request not found"})
	}
	if txn.Status != "initiated" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Deposit has already been confirmed or processed"})
	}

	txn.Status = "pending"
	txn.ProofURL = req.ProofURL
	if err := database.DB.Save(&txn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to confirm deposit"})
	}

	go notifications.SendDepositEmailToAdmin(txn.User.FullName, txn.User.Email, txn.Reference, txn.Amount)
	websocket.NotifyUser(userID, websocket.Event{
		Type:    "deposit_pending",
		Message: "Your deposit is awaiting verification",
		Amount:  txn.Amount,
	})

	return c.JSON(fiber.Map{"message": "Deposit confirmed. It will be credited once verified.", "status": txn.Status})
}

func ListMyDeposits(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var deposits []models.Transaction
	database.DB.Where("user_id = ? AND type = ?", userID, "deposit").
		Order("created_at desc").
		Find(&deposits)

	return c.JSON(deposits)
}
