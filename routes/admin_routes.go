package routes

import (
	"github.com/sheratonhq/sheraton/handlers"
	"github.com/sheratonhq/sheraton/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/transactions/pending", handlers.ListPendingTransactions)
	admin.Post("/transactions/:transactionId/process", handlers.ProcessTransaction)
	admin.Get("/withdrawals/pending", handlers.ListPendingWithdrawals)
	admin.Post("/withdrawals/:withdrawalId/process", handlers.ProcessWithdrawal)

	admin.Post("/earnings/process", handlers.TriggerEarnings)

	admin.Get("/users", handlers.ListUsers)
	admin.Put("/users/:userId/toggle-active", handlers.ToggleUserActive)

	admin.Post("/plans", handlers.CreatePlan)
	admin.Put("/plans/:planId", handlers.UpdatePlan)
	admin.Delete("/plans/:planId", handlers.RetirePlan)

	admin.Post("/bank-accounts", handlers.SetReceivingBankAccount)

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
	admin.Get("/transactions/export", handlers.ExportTransactionsCSV)
}
