package internal

import "github.com/gofiber/fiber/v2"

func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	api.Get("/orders/track/:ref", h.TrackOrder)
	api.Get("/products", h.ListProducts)

	usr := api.Group("/user")
	usr.Post("/login", h.Login)
	usr.Post("/register", h.Register)

	auth := usr.Group("", h.Authorize)
	auth.Get("/menu", h.Menu)
	auth.Get("/events", h.Events)

	auth.Get("/orders", h.RequireCapability(ResourceOrders, ActionRead), h.GetOrders)
	auth.Post("/orders", h.RequireCapability(ResourceOrders, ActionWrite), h.CreateOrder)
	auth.Get("/orders/:number", h.RequireCapability(ResourceOrders, ActionRead), h.GetOrder)

	wallet := auth.Group("/balance")
	wallet.Get("", h.RequireCapability(ResourceWallet, ActionRead), h.GetBalance)
	wallet.Get("/summary", h.RequireCapability(ResourceWallet, ActionRead), h.BalanceSummary)
	wallet.Get("/recharge", h.RequireCapability(ResourceWallet, ActionRead), h.RechargeHistory)
	wallet.Post("/recharge", h.RequireCapability(ResourceWallet, ActionWrite), h.Recharge)
	wallet.Get("/withdraw", h.RequireCapability(ResourceWallet, ActionRead), h.WithdrawHistory)
	wallet.Post("/withdraw", h.RequireCapability(ResourceWallet, ActionWrite), h.Withdraw)

	msg := auth.Group("/messages")
	msg.Get("/unread", h.RequireCapability(ResourceMessages, ActionRead), h.UnreadMessages)
	msg.Get("/:peer", h.RequireCapability(ResourceMessages, ActionRead), h.GetConversation)
	msg.Post("", h.RequireCapability(ResourceMessages, ActionWrite), h.SendMessage)
	msg.Post("/:peer/read", h.RequireCapability(ResourceMessages, ActionWrite), h.MarkConversationRead)

	auth.Get("/notifications", h.RequireCapability(ResourceNotifications, ActionRead), h.GetNotifications)
	auth.Post("/notifications/:id/read", h.RequireCapability(ResourceNotifications, ActionWrite), h.MarkNotificationRead)

	shop := api.Group("/shop", h.Authorize)
	shop.Post("/products", h.RequireCapability(ResourceProducts, ActionManage), h.CreateProduct)
	shop.Patch("/orders/:number/status", h.RequireCapability(ResourceShopOrders, ActionManage), h.UpdateOrderStatus)
}
