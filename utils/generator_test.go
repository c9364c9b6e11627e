package utils

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateReference_Format(t *testing.T) {
	ref := GenerateReference("WDR")

	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 dash-separated parts, got %q", ref)
	}
	if parts[0] != "WDR" {
		t.Errorf("Expected WDR prefix, got %q", parts[0])
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("Timestamp part %q is not an integer: %v", parts[1], err)
	}
	now := time.Now().Unix()
	if ts < now-5 || ts > now+5 {
		t.Errorf("Timestamp %d not within 5s of now (%d)", ts, now)
	}

	if len(parts[2]) != 3 {
		t.Errorf("Expected zero-padded 3-digit suffix, got %q", parts[2])
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 0 || n > 999 {
		t.Errorf("Suffix %q not in range 000-999", parts[2])
	}
}

func TestParseDurationDays(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"10 days", 10, false},
		{"1 day", 1, false},
		{" 30 days ", 30, false},
		{"365", 365, false},
		{"days", 0, true},
		{"", 0, true},
		{"0 days", 0, true},
		{"-5 days", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseDurationDays(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDurationDays(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDurationDays(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDurationDays(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestGenerateDepositAndWithdrawalPrefixes(t *testing.T) {
	if ref := GenerateDepositReference(); !strings.HasPrefix(ref, "DEP-") {
		t.Errorf("Deposit reference %q missing DEP- prefix", ref)
	}
	if ref := GenerateWithdrawalReference(); !strings.HasPrefix(ref, "WDR-") {
		t.Errorf("Withdrawal reference %q missing WDR- prefix", ref)
	}
}
