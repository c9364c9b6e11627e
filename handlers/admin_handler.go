package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/notifications"
	"github.com/sheratonhq/sheraton/services"
	"github.com/sheratonhq/sheraton/utils"
	"github.com/sheratonhq/sheraton/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errNotPending = errors.New("request is not pending")

func ListPendingTransactions(c *fiber.Ctx) error {
	var pending []models.Transaction
	if err := database.DB.Preload("User").Where("status = ?", "pending").Order("created_at asc").Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pending)
}

// ProcessTransaction is the admin's approve/reject decision on a deposit.
// Approval credits the balance and the transaction row in one transaction;
// referral rewards are paid out once that commit has succeeded.
func ProcessTransaction(c *fiber.Ctx) error {
	transactionID := c.Params("transactionId")

	type ProcessRequest struct {
		Decision   string `json:"decision" validate:"required,oneof=approve reject"`
		AdminNotes string `json:"admin_notes"`
	}
	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var txn models.Transaction
	if err := database.DB.Preload("User").First(&txn, "id = ?", transactionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}

	newStatus := "completed"
	if req.Decision == "reject" {
		newStatus = "rejected"
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, "pending").
			Updates(map[string]interface{}{
				"status":       newStatus,
				"admin_notes":  req.AdminNotes,
				"processed_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errNotPending
		}

		if req.Decision == "approve" {
			return services.Credit(tx, txn.UserID, txn.Amount)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errNotPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Transaction is not pending"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process transaction"})
	}

	user := txn.User
	if req.Decision == "approve" {
		services.RewardReferrers(txn)

		websocket.NotifyUser(txn.UserID, websocket.Event{
			Type:    "deposit_approved",
			Message: fmt.Sprintf("Your deposit of ₦%.2f has been credited", txn.Amount),
			Amount:  txn.Amount,
		})
		go notifications.SendEmail(
			user.FullName,
			user.Email,
			"Your Deposit Has Been Credited",
			fmt.Sprintf("<h1>Deposit Approved</h1><p>Hello %s,</p><p>Your deposit of ₦%.2f (ref %s) has been verified and added to your balance.</p>", user.FullName, txn.Amount, txn.Reference),
		)
	} else {
		websocket.NotifyUser(txn.UserID, websocket.Event{
			Type:    "deposit_rejected",
			Message: "Your deposit could not be verified",
		})
		go notifications.SendEmail(
			user.FullName,
			user.Email,
			"Update on Your Deposit",
			fmt.Sprintf("<h1>Deposit Rejected</h1><p>Hello %s,</p><p>Your deposit (ref %s) could not be verified.</p><p><b>Notes:</b> %s</p>", user.FullName, txn.Reference, req.AdminNotes),
		)
	}

	return c.JSON(fiber.Map{"message": "Transaction processed.", "status": newStatus})
}

func ListPendingWithdrawals(c *fiber.Ctx) error {
	var pending []models.Withdrawal
	if err := database.DB.Preload("User").Where("status = ?", "pending").Order("created_at asc").Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pending)
}

// ProcessWithdrawal marks a pending withdrawal paid or failed. The balance
// was debited at initiation, so a failed decision refunds the gross amount.
func ProcessWithdrawal(c *fiber.Ctx) error {
	withdrawalID := c.Params("withdrawalId")

	type ProcessRequest struct {
		Decision   string `json:"decision" validate:"required,oneof=paid failed"`
		AdminNotes string `json:"admin_notes"`
	}
	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var withdrawal models.Withdrawal
	if err := database.DB.Preload("User").First(&withdrawal, "id = ?", withdrawalID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Withdrawal request not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.Withdrawal{}).
			Where("id = ? AND status = ?", withdrawal.ID, "pending").
			Updates(map[string]interface{}{
				"status":       req.Decision,
				"admin_notes":  req.AdminNotes,
				"processed_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errNotPending
		}

		if req.Decision == "failed" {
			return services.Credit(tx, withdrawal.UserID, withdrawal.Amount)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errNotPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Withdrawal is not pending"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process withdrawal"})
	}

	user := withdrawal.User
	if req.Decision == "paid" {
		websocket.NotifyUser(withdrawal.UserID, websocket.Event{
			Type:    "withdrawal_paid",
			Message: fmt.Sprintf("Your withdrawal of ₦%.2f has been paid", withdrawal.NetAmount),
			Amount:  withdrawal.NetAmount,
		})
		go notifications.SendEmail(
			user.FullName,
			user.Email,
			"Your Withdrawal Has Been Paid",
			fmt.Sprintf("<h1>Withdrawal Paid</h1><p>Hello %s,</p><p>Your withdrawal (ref %s) of ₦%.2f has been sent to your bank account.</p>", user.FullName, withdrawal.Reference, withdrawal.NetAmount),
		)
	} else {
		websocket.NotifyUser(withdrawal.UserID, websocket.Event{
			Type:    "withdrawal_failed",
			Message: "Your withdrawal could not be completed. The funds have been returned to your balance.",
			Amount:  withdrawal.Amount,
		})
		go notifications.SendEmail(
			user.FullName,
			user.Email,
			"Update on Your Withdrawal Request",
			fmt.Sprintf("<h1>Withdrawal Failed</h1><p>Hello %s,</p><p>Your withdrawal (ref %s) could not be completed. The full amount of ₦%.2f has been returned to your balance.</p><p><b>Notes:</b> %s</p>", user.FullName, withdrawal.Reference, withdrawal.Amount, req.AdminNotes),
		)
	}

	return c.JSON(fiber.Map{"message": "Withdrawal processed.", "status": req.Decision})
}

// TriggerEarnings runs the daily payout processor on demand and returns its
// summary. It shares the same entry point as the cron schedule.
func TriggerEarnings(c *fiber.Ctx) error {
	summary := services.ProcessDailyEarnings()
	return c.JSON(summary)
}

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func ToggleUserActive(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"id": user.ID, "is_active": user.IsActive})
}

type PlanRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	DailyIncome float64 `json:"daily_income" validate:"required,gt=0"`
	TotalIncome float64 `json:"total_income" validate:"required,gt=0"`
	Duration    string  `json:"duration" validate:"required"`
	Risk        string  `json:"risk"`
	Volatility  string  `json:"volatility"`
	Description *string `json:"description"`
}

func CreatePlan(c *fiber.Ctx) error {
	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	days, err := utils.ParseDurationDays(req.Duration)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid duration, expected e.g. \"10 days\""})
	}

	plan := models.InvestmentPlan{
		Name:         req.Name,
		Price:        req.Price,
		DailyIncome:  req.DailyIncome,
		TotalIncome:  req.TotalIncome,
		DurationDays: days,
		Risk:         req.Risk,
		Volatility:   req.Volatility,
		Description:  req.Description,
		IsActive:     true,
	}
	if err := database.DB.Create(&plan).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create plan"})
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func UpdatePlan(c *fiber.Ctx) error {
	planID := c.Params("planId")

	var plan models.InvestmentPlan
	if err := database.DB.First(&plan, "id = ?", planID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	days, err := utils.ParseDurationDays(req.Duration)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid duration, expected e.g. \"10 days\""})
	}

	plan.Name = req.Name
	plan.Price = req.Price
	plan.DailyIncome = req.DailyIncome
	plan.TotalIncome = req.TotalIncome
	plan.DurationDays = days
	plan.Risk = req.Risk
	plan.Volatility = req.Volatility
	plan.Description = req.Description

	if err := database.DB.Save(&plan).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update plan"})
	}
	return c.JSON(plan)
}

// RetirePlan hides a plan from the catalog. Existing investments keep
// accruing; only new purchases are blocked.
func RetirePlan(c *fiber.Ctx) error {
	planID := c.Params("planId")

	result := database.DB.Model(&models.InvestmentPlan{}).Where("id = ?", planID).Update("is_active", false)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retire plan"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	}
	return c.JSON(fiber.Map{"message": "Plan retired."})
}

type BankAccountRequest struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
}

// SetReceivingBankAccount replaces the active platform receiving account.
func SetReceivingBankAccount(c *fiber.Ctx) error {
	var req BankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var account models.BankAccount
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BankAccount{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		account = models.BankAccount{
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			AccountName:   req.AccountName,
			IsActive:      true,
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set receiving account"})
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var userCount int64
	database.DB.Model(&models.User{}).Where("role = ?", "user").Count(&userCount)

	var totalBalances float64
	database.DB.Model(&models.User{}).Select("COALESCE(SUM(balance), 0)").Row().Scan(&totalBalances)

	var pendingDeposits, pendingWithdrawals, activeInvestments int64
	database.DB.Model(&models.Transaction{}).Where("status = ?", "pending").Count(&pendingDeposits)
	database.DB.Model(&models.Withdrawal{}).Where("status = ?", "pending").Count(&pendingWithdrawals)
	database.DB.Model(&models.Investment{}).Where("status = ?", "active").Count(&activeInvestments)

	var totalInvested, totalPaidOut, feeRevenue float64
	database.DB.Model(&models.Investment{}).Select("COALESCE(SUM(amount_invested), 0)").Row().Scan(&totalInvested)
	database.DB.Model(&models.Investment{}).Select("COALESCE(SUM(earnings_to_date), 0)").Row().Scan(&totalPaidOut)
	database.DB.Model(&models.AdminFee{}).Select("COALESCE(SUM(amount), 0)").Row().Scan(&feeRevenue)

	return c.JSON(fiber.Map{
		"total_users":         userCount,
		"total_balances":      totalBalances,
		"pending_deposits":    pendingDeposits,
		"pending_withdrawals": pendingWithdrawals,
		"active_investments":  activeInvestments,
		"total_invested":      totalInvested,
		"total_paid_out":      totalPaidOut,
		"fee_revenue":         feeRevenue,
	})
}

// ExportTransactionsCSV streams a date-ranged CSV of deposits for offline
// reconciliation.
func ExportTransactionsCSV(c *fiber.Ctx) error {
	startDate, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start date, expected YYYY-MM-DD"})
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end date, expected YYYY-MM-DD"})
	}
	endDate = endDate.AddDate(0, 0, 1)

	var transactions []models.Transaction
	if err := database.DB.Preload("User").
		Where("created_at >= ? AND created_at < ?", startDate, endDate).
		Order("created_at asc").
		Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	w.Write([]string{"reference", "user_email", "type", "amount", "status", "created_at", "processed_at"})
	for _, txn := range transactions {
		processedAt := ""
		if txn.ProcessedAt != nil {
			processedAt = txn.ProcessedAt.Format(time.RFC3339)
		}
		w.Write([]string{
			txn.Reference,
			txn.User.Email,
			txn.Type,
			fmt.Sprintf("%.2f", txn.Amount),
			txn.Status,
			txn.CreatedAt.Format(time.RFC3339),
			processedAt,
		})
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s_to_%s.csv\"", c.Query("start"), c.Query("end")))

	return c.Send(b.Bytes())
}
