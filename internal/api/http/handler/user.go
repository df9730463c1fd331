package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"is_staff":   u.IsStaff,
	})
}
