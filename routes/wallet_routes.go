package routes

import (
	"github.com/sheratonhq/sheraton/handlers"
	"github.com/sheratonhq/sheraton/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func WalletRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	wallet := api.Group("/wallet", middleware.Protected())
	wallet.Post("/deposits", handlers.InitiateDeposit)
	wallet.Post("/deposits/:reference/confirm", handlers.ConfirmDeposit)
	wallet.Get("/deposits", handlers.ListMyDeposits)
	wallet.Post("/withdrawals", handlers.InitiateWithdrawal)
	wallet.Get("/withdrawals", handlers.ListMyWithdrawals)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
