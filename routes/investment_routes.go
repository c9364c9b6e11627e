package routes

import (
	"github.com/sheratonhq/sheraton/handlers"
	"github.com/sheratonhq/sheraton/middleware"
	"github.com/gofiber/fiber/v2"
)

func InvestmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/plans", handlers.ListPlans)

	investments := api.Group("/investments", middleware.Protected())
	investments.Post("", handlers.InvestInPlan)
	investments.Get("", handlers.ListMyInvestments)
}
