package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AccountHandler, guard *AuthGuard) {
	users := app.Group("/api/users")

	users.Post("/signup", h.Signup)
	users.Get("/verify-email/:token", h.VerifyEmail)
	users.Post("/request-password-reset", h.RequestPasswordReset)
	users.Get("/verify-reset-token/:token", h.VerifyResetToken)
	users.Post("/reset-password/:token", h.ResetPassword)
	users.Post("/login", h.Login)

	// Session-gated endpoints
	users.Get("/online-users", guard.RequireSession, h.GetOnlineUsers)
	users.Post("/logout", guard.RequireSession, h.Logout)
}
