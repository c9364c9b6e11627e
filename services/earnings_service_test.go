package services

import (
	"math"
	"testing"
	"time"

	"github.com/sheratonhq/sheraton/models"
)

// floatEquals compares two floats with tolerance
func floatEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func activeInvestment(daily, total, earned float64, next time.Time) models.Investment {
	return models.Investment{
		PlanName:       "Starter",
		AmountInvested: 3000,
		DailyIncome:    daily,
		TotalIncome:    total,
		EarningsToDate: earned,
		StartDate:      next.Add(-24 * time.Hour),
		EndDate:        next.AddDate(0, 0, 10),
		NextPayoutAt:   &next,
		Status:         "active",
	}
}

func TestNextPayout_NotDueYet(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 9000, 0, now.Add(time.Hour))

	if _, ok := NextPayout(inv, now); ok {
		t.Error("Expected no payout for an investment whose next payout is in the future")
	}
}

func TestNextPayout_InactiveOrUnscheduled(t *testing.T) {
	now := time.Now()

	completed := activeInvestment(900, 9000, 9000, now.Add(-time.Hour))
	completed.Status = "completed"
	if _, ok := NextPayout(completed, now); ok {
		t.Error("Expected no payout for a completed investment")
	}

	unscheduled := activeInvestment(900, 9000, 0, now)
	unscheduled.NextPayoutAt = nil
	if _, ok := NextPayout(unscheduled, now); ok {
		t.Error("Expected no payout when next_payout_at is unset")
	}
}

func TestNextPayout_RegularPayout(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 9000, 1800, now.Add(-time.Minute))

	step, ok := NextPayout(inv, now)
	if !ok {
		t.Fatal("Expected a due payout")
	}
	if !floatEquals(step.Delta, 900, 0.001) {
		t.Errorf("Expected delta 900, got %.2f", step.Delta)
	}
	if !floatEquals(step.NewEarnings, 2700, 0.001) {
		t.Errorf("Expected new earnings 2700, got %.2f", step.NewEarnings)
	}
	if step.Completed {
		t.Error("Investment should not be completed before the cap")
	}
	if step.NextPayoutAt == nil {
		t.Fatal("Expected next payout to be scheduled")
	}
	expectedNext := now.Add(24 * time.Hour)
	if step.NextPayoutAt.Sub(expectedNext) > time.Second || expectedNext.Sub(*step.NextPayoutAt) > time.Second {
		t.Errorf("Expected next payout ~24h ahead, got %v", step.NextPayoutAt)
	}
}

func TestNextPayout_ClampedToCap(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 9000, 8500, now.Add(-time.Minute))

	step, ok := NextPayout(inv, now)
	if !ok {
		t.Fatal("Expected a due payout")
	}
	if !floatEquals(step.Delta, 500, 0.001) {
		t.Errorf("Expected clamped delta 500, got %.2f", step.Delta)
	}
	if !floatEquals(step.NewEarnings, 9000, 0.001) {
		t.Errorf("Expected earnings capped at 9000, got %.2f", step.NewEarnings)
	}
	if !step.Completed {
		t.Error("Expected investment to complete when the cap is reached")
	}
	if step.NextPayoutAt != nil {
		t.Error("Completed investment must have no next payout")
	}
}

func TestNextPayout_EndDatePassedCompletesAfterFinalPayout(t *testing.T) {
	now := time.Now()
	// Plan where the cap is far beyond what the duration can accrue: 900/day
	// for 10 days against an 18,000 cap. 20 days past the end date the
	// investment must stop after its final due payout, not run to the cap.
	inv := activeInvestment(900, 18000, 9000, now.Add(-time.Minute))
	inv.EndDate = now.AddDate(0, 0, -20)

	step, ok := NextPayout(inv, now)
	if !ok {
		t.Fatal("Expected the final due payout to be paid")
	}
	if !floatEquals(step.Delta, 900, 0.001) {
		t.Errorf("Expected final delta 900, got %.2f", step.Delta)
	}
	if !floatEquals(step.NewEarnings, 9900, 0.001) {
		t.Errorf("Expected new earnings 9900, got %.2f", step.NewEarnings)
	}
	if !step.Completed {
		t.Error("Expected investment to complete once the end date has passed")
	}
	if step.NextPayoutAt != nil {
		t.Error("Completed investment must have no next payout")
	}
}

func TestNextPayout_EndDateExactlyNowIsTerminal(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 18000, 0, now.Add(-time.Minute))
	inv.EndDate = now

	step, ok := NextPayout(inv, now)
	if !ok {
		t.Fatal("Expected a due payout")
	}
	if !step.Completed {
		t.Error("Expected completion when now equals the end date")
	}
}

func TestNextPayout_FutureEndDateKeepsAccruing(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 18000, 900, now.Add(-time.Minute))
	inv.EndDate = now.AddDate(0, 0, 8)

	step, ok := NextPayout(inv, now)
	if !ok {
		t.Fatal("Expected a due payout")
	}
	if step.Completed {
		t.Error("Investment with a future end date and earnings below cap must stay active")
	}
	if step.NextPayoutAt == nil {
		t.Error("Expected the next payout to be scheduled")
	}
}

func TestNextPayout_CapAlreadyReached(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 9000, 9000, now.Add(-time.Minute))

	if _, ok := NextPayout(inv, now); ok {
		t.Error("Expected no payout once earnings equal the cap")
	}
}

// The end-to-end accrual scenario: a 3,000 plan earning 900/day to a 9,000
// cap completes after exactly 10 payouts and an 11th run changes nothing.
func TestNextPayout_TenDayLifecycle(t *testing.T) {
	now := time.Now()
	inv := activeInvestment(900, 9000, 0, now)
	balance := 7000.0

	payouts := 0
	for i := 0; i < 11; i++ {
		step, ok := NextPayout(inv, now)
		if !ok {
			break
		}
		payouts++
		balance += step.Delta
		inv.EarningsToDate = step.NewEarnings
		inv.NextPayoutAt = step.NextPayoutAt
		if step.Completed {
			inv.Status = "completed"
		}
		now = now.Add(24 * time.Hour)
	}

	if payouts != 10 {
		t.Errorf("Expected exactly 10 payouts, got %d", payouts)
	}
	if !floatEquals(inv.EarningsToDate, 9000, 0.001) {
		t.Errorf("Expected final earnings 9000, got %.2f", inv.EarningsToDate)
	}
	if inv.Status != "completed" {
		t.Errorf("Expected status completed, got %s", inv.Status)
	}
	if inv.NextPayoutAt != nil {
		t.Error("Expected no next payout after completion")
	}
	if !floatEquals(balance, 16000, 0.001) {
		t.Errorf("Expected balance 16000 after full accrual, got %.2f", balance)
	}

	if _, ok := NextPayout(inv, now); ok {
		t.Error("An extra run after completion must not pay out")
	}
}

func TestNextPayout_EarningsNeverExceedCap(t *testing.T) {
	now := time.Now()
	for _, earned := range []float64{0, 100, 8999.99, 8100} {
		inv := activeInvestment(900, 9000, earned, now.Add(-time.Minute))
		step, ok := NextPayout(inv, now)
		if !ok {
			t.Fatalf("Expected a due payout at earnings %.2f", earned)
		}
		if step.NewEarnings > 9000 {
			t.Errorf("Earnings %.2f exceed the cap after payout (started at %.2f)", step.NewEarnings, earned)
		}
		if step.Delta < 0 {
			t.Errorf("Negative payout delta %.2f at earnings %.2f", step.Delta, earned)
		}
	}
}
