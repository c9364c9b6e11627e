package services

import (
	"fmt"
	"log"
	"time"

	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/websocket"
	"gorm.io/gorm"
)

const payoutInterval = 24 * time.Hour

// PayoutStep is the state transition one due payout applies to an investment.
type PayoutStep struct {
	NewEarnings  float64
	Delta        float64
	Completed    bool
	NextPayoutAt *time.Time
}

type EarningsSummary struct {
	Processed int           `json:"processed"`
	Completed int           `json:"completed"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Errors    []PayoutError `json:"errors,omitempty"`
	RanAt     time.Time     `json:"ran_at"`
}

type PayoutError struct {
	InvestmentID string `json:"investment_id"`
	Error        string `json:"error"`
}

// NextPayout computes the payout an investment is owed at the given instant.
// It returns false when nothing is due: the investment is not active, its
// next payout time has not arrived, or the cap is already reached. The
// credited delta is clamped so earnings never exceed TotalIncome, and an
// investment whose end date has passed is completed after its final due
// payout instead of accruing forever.
func NextPayout(inv models.Investment, now time.Time) (PayoutStep, bool) {
	if inv.Status != "active" || inv.NextPayoutAt == nil {
		return PayoutStep{}, false
	}
	if inv.NextPayoutAt.After(now) {
		return PayoutStep{}, false
	}
	if inv.EarningsToDate >= inv.TotalIncome {
		return PayoutStep{}, false
	}

	newEarnings := Round2(inv.EarningsToDate + inv.DailyIncome)
	if newEarnings > inv.TotalIncome {
		newEarnings = inv.TotalIncome
	}

	step := PayoutStep{
		NewEarnings: newEarnings,
		Delta:       Round2(newEarnings - inv.EarningsToDate),
	}
	if newEarnings >= inv.TotalIncome || !now.Before(inv.EndDate) {
		step.Completed = true
	} else {
		next := now.Add(payoutInterval)
		step.NextPayoutAt = &next
	}
	return step, true
}

// ProcessDailyEarnings is the single entry point for the daily payout run;
// both the cron job and the admin trigger route call it. Each due investment
// is claimed with a conditional update keyed on the next_payout_at value that
// was read, inside its own transaction, so two concurrent runs can never pay
// the same window twice. Per-investment failures are collected and do not
// stop the run.
func ProcessDailyEarnings() EarningsSummary {
	now := time.Now()
	summary := EarningsSummary{RanAt: now}

	var due []models.Investment
	err := database.DB.
		Where("status = ? AND next_payout_at IS NOT NULL AND next_payout_at <= ? AND earnings_to_date < total_income", "active", now).
		Find(&due).Error
	if err != nil {
		log.Printf("🔥 Failed to load due investments: %v", err)
		summary.Failed = 1
		summary.Errors = append(summary.Errors, PayoutError{Error: err.Error()})
		return summary
	}

	for _, inv := range due {
		step, ok := NextPayout(inv, now)
		if !ok {
			summary.Skipped++
			continue
		}

		claimedAt := *inv.NextPayoutAt
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{
				"earnings_to_date": step.NewEarnings,
				"last_payout_at":   now,
				"next_payout_at":   step.NextPayoutAt,
			}
			if step.Completed {
				updates["status"] = "completed"
			}

			// The claim: only the run that still sees the original
			// next_payout_at gets to advance it.
			result := tx.Model(&models.Investment{}).
				Where("id = ? AND status = ? AND next_payout_at = ?", inv.ID, "active", claimedAt).
				Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errAlreadyClaimed
			}

			return Credit(tx, inv.UserID, step.Delta)
		})

		switch err {
		case nil:
			summary.Processed++
			if step.Completed {
				summary.Completed++
			}
			websocket.NotifyUser(inv.UserID, websocket.Event{
				Type:    "payout",
				Message: fmt.Sprintf("Daily payout of ₦%.2f credited for %s", step.Delta, inv.PlanName),
				Amount:  step.Delta,
			})
		case errAlreadyClaimed:
			summary.Skipped++
		default:
			summary.Failed++
			summary.Errors = append(summary.Errors, PayoutError{
				InvestmentID: inv.ID.String(),
				Error:        err.Error(),
			})
			log.Printf("🔥 Payout failed for investment %s: %v", inv.ID, err)
		}
	}

	log.Printf("✅ Earnings run: %d processed, %d completed, %d skipped, %d failed",
		summary.Processed, summary.Completed, summary.Skipped, summary.Failed)
	return summary
}

var errAlreadyClaimed = fmt.Errorf("investment already claimed by a concurrent run")
