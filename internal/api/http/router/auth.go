package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, requireAuth, loginLimiter fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/register", loginLimiter, h.Register)
	group.Post("/login", loginLimiter, h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", requireAuth, h.Logout)

	staff := group.Group("/staff")
	staff.Post("/login", loginLimiter, h.StaffLogin)
	staff.Post("/logout", h.StaffLogout)
}
