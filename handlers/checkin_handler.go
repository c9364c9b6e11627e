package handlers

import (
	"errors"
	"time"

	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/sheratonhq/sheraton/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dailyCheckInBonus = 50.00

// Check-in days follow the platform's operating timezone rather than UTC, so
// the daily boundary matches the clock users see.
var platformTZ = loadPlatformTZ()

func loadPlatformTZ() *time.Location {
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		return time.FixedZone("WAT", 3600)
	}
	return loc
}

// checkInDay normalises an instant to its calendar date in the platform
// timezone, stored as midnight UTC so date equality is exact.
func checkInDay(t time.Time) time.Time {
	local := t.In(platformTZ)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyCheckIn credits a small loyalty bonus once per calendar day and tracks
// the consecutive-day streak.
func DailyCheckIn(c *fiber.Ctx) error {
	userID := currentUserID(c)
	today := checkInDay(time.Now())

	var checkIn models.CheckIn
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CheckIn
		if err := tx.Where("user_id = ? AND day = ?", userID, today).First(&existing).Error; err == nil {
			return errors.New("already checked in today")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		streak := 1
		yesterday := today.AddDate(0, 0, -1)
		var previous models.CheckIn
		if err := tx.Where("user_id = ? AND day = ?", userID, yesterday).First(&previous).Error; err == nil {
			streak = previous.Streak + 1
		}

		checkIn = models.CheckIn{
			UserID: userID,
			Day:    today,
			Streak: streak,
			Bonus:  dailyCheckInBonus,
		}
		if err := tx.Create(&checkIn).Error; err != nil {
			return err
		}

		return services.Credit(tx, userID, dailyCheckInBonus)
	})
	if err != nil {
		if err.Error() == "already checked in today" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already checked in today"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record check-in"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Check-in recorded",
		"streak":  checkIn.Streak,
		"bonus":   checkIn.Bonus,
	})
}

func GetMyCheckIns(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var history []models.CheckIn
	database.DB.Where("user_id = ?", userID).
		Order("day desc").
		Limit(30).
		Find(&history)

	currentStreak := 0
	if len(history) > 0 {
		today := checkInDay(time.Now())
		latest := history[0]
		if latest.Day.Equal(today) || latest.Day.Equal(today.AddDate(0, 0, -1)) {
			currentStreak = latest.Streak
		}
	}

	return c.JSON(fiber.Map{
		"current_streak": currentStreak,
		"history":        history,
	})
}
