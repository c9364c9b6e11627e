package database

import (
	"fmt"
	"log"

	config "github.com/sheratonhq/sheraton/configs"
	"github.com/sheratonhq/sheraton/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.InvestmentPlan{},
		&models.Investment{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.AdminFee{},
		&models.Referral{},
		&models.ReferralReward{},
		&models.BankAccount{},
		&models.CheckIn{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedPlans loads the starter catalog on an empty database.
func SeedPlans() {
	var count int64
	if err := DB.Model(&models.InvestmentPlan{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check investment plans: %v", err)
		return
	}
	if count > 0 {
		return
	}

	starter := "Entry-level plan for first-time investors."
	growth := "Balanced plan with steady daily returns."
	premium := "High-yield plan for experienced investors."

	plans := []models.InvestmentPlan{
		{Name: "Starter", Price: 3000, DailyIncome: 900, TotalIncome: 9000, DurationDays: 10, Risk: "low", Volatility: "low", Description: &starter, IsActive: true},
		{Name: "Growth", Price: 10000, DailyIncome: 2500, TotalIncome: 37500, DurationDays: 15, Risk: "medium", Volatility: "medium", Description: &growth, IsActive: true},
		{Name: "Premium", Price: 50000, DailyIncome: 11000, TotalIncome: 220000, DurationDays: 20, Risk: "high", Volatility: "high", Description: &premium, IsActive: true},
	}

	if err := DB.Create(&plans).Error; err != nil {
		log.Fatalf("🔥 Failed to seed investment plans: %v", err)
		return
	}

	log.Println("✅ Investment plan catalog seeded successfully")
}
