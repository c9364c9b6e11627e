package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sheratonhq/sheraton/models"
	"gorm.io/gorm"
)

const referralCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateUniqueReferralCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referralCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var user models.User
		err := tx.Where("referral_code = ?", code).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

// GenerateReference builds a payment reference of the form
// <prefix>-<unix timestamp>-<random 0-999>. For deposits the reference doubles
// as the bank-transfer narration the admin reconciles against.
func GenerateReference(prefix string) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, time.Now().Unix(), rand.Intn(1000))
}

func GenerateDepositReference() string {
	return GenerateReference("DEP")
}

func GenerateWithdrawalReference() string {
	return GenerateReference("WDR")
}

// ParseDurationDays extracts the leading day count from a plan duration
// string such as "10 days".
func ParseDurationDays(duration string) (int, error) {
	var days int
	if _, err := fmt.Sscanf(strings.TrimSpace(duration), "%d", &days); err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", duration, err)
	}
	if days <= 0 {
		return 0, fmt.Errorf("invalid duration %q: day count must be positive", duration)
	}
	return days, nil
}
