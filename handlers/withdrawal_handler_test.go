package handlers

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sheratonhq/sheraton/services"
	"github.com/gofiber/fiber/v2"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0.001
}

func TestWithdrawalFee(t *testing.T) {
	cases := []struct {
		amount, wantFee, wantNet float64
	}{
		{1000, 100, 900},
		{5000, 500, 4500},
		{12345.67, 1234.57, 11111.10},
		{100000, 10000, 90000},
	}

	for _, tc := range cases {
		fee, net := WithdrawalFee(tc.amount)
		if !almostEqual(fee, tc.wantFee) {
			t.Errorf("WithdrawalFee(%.2f) fee = %.2f, want %.2f", tc.amount, fee, tc.wantFee)
		}
		if !almostEqual(net, tc.wantNet) {
			t.Errorf("WithdrawalFee(%.2f) net = %.2f, want %.2f", tc.amount, net, tc.wantNet)
		}
	}
}

func TestWithdrawalFee_FeePlusNetEqualsGross(t *testing.T) {
	for _, amount := range []float64{1000, 1500.55, 33333.33, 999999.99} {
		fee, net := WithdrawalFee(amount)
		if !almostEqual(fee+net, amount) {
			t.Errorf("fee %.2f + net %.2f != gross %.2f", fee, net, amount)
		}
	}
}

func TestWithdrawalErrorResponse_KnownErrors(t *testing.T) {
	status, message := withdrawalErrorResponse(services.ErrInsufficientBalance)
	if status != fiber.StatusBadRequest || message != "Insufficient balance" {
		t.Errorf("insufficient balance mapped to %d %q", status, message)
	}

	status, message = withdrawalErrorResponse(errProfileNotFound)
	if status != fiber.StatusNotFound || message != "User profile not found" {
		t.Errorf("missing profile mapped to %d %q", status, message)
	}
}

func TestWithdrawalErrorResponse_HidesDatastoreDetail(t *testing.T) {
	driverErr := errors.New(`pq: deadlock detected on relation "users" (SQLSTATE 40P01)`)

	status, message := withdrawalErrorResponse(driverErr)
	if status != fiber.StatusInternalServerError {
		t.Errorf("unknown error mapped to status %d, want 500", status)
	}
	if strings.Contains(message, "pq:") || strings.Contains(message, "SQLSTATE") {
		t.Errorf("driver detail leaked to client: %q", message)
	}
	if message != "Failed to create withdrawal request" {
		t.Errorf("unexpected generic message %q", message)
	}
}
