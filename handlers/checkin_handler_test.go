package handlers

import (
	"testing"
	"time"
)

func TestCheckInDay_UsesPlatformTimezone(t *testing.T) {
	// 23:30 UTC on Dec 31 is already 00:30 Jan 1 in Lagos (UTC+1).
	lateUTC := time.Date(2025, 12, 31, 23, 30, 0, 0, time.UTC)
	day := checkInDay(lateUTC)
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("checkInDay(%v) = %v, want %v", lateUTC, day, want)
	}

	// 22:30 UTC is 23:30 in Lagos, still the same date.
	earlierUTC := time.Date(2025, 12, 31, 22, 30, 0, 0, time.UTC)
	day = checkInDay(earlierUTC)
	want = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("checkInDay(%v) = %v, want %v", earlierUTC, day, want)
	}
}

func TestCheckInDay_ConsecutiveDaysAreAdjacent(t *testing.T) {
	today := checkInDay(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	yesterday := checkInDay(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	if !yesterday.Equal(today.AddDate(0, 0, -1)) {
		t.Errorf("Expected %v to be one day before %v", yesterday, today)
	}
}

func TestCheckInDay_SameLocalDayNormalisesEqual(t *testing.T) {
	morning := checkInDay(time.Date(2026, 6, 10, 6, 0, 0, 0, time.UTC))
	evening := checkInDay(time.Date(2026, 6, 10, 20, 45, 0, 0, time.UTC))

	if !morning.Equal(evening) {
		t.Errorf("Two instants on the same Lagos date normalised differently: %v vs %v", morning, evening)
	}
}
