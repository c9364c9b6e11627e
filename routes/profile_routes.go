package routes

import (
	"github.com/sheratonhq/sheraton/handlers"
	"github.com/sheratonhq/sheraton/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Get("/portfolio", handlers.GetMyPortfolio)
	profile.Post("/statement", handlers.RequestStatement)

	referrals := api.Group("/referrals", middleware.Protected())
	referrals.Get("", handlers.GetMyReferrals)

	checkins := api.Group("/checkins", middleware.Protected())
	checkins.Post("", handlers.DailyCheckIn)
	checkins.Get("/me", handlers.GetMyCheckIns)

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
