package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/appointments")

	group.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), h.Create)
	group.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.List)
	group.Get("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), h.Get)
	group.Patch("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Update)
	group.Patch("/:id/status", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.UpdateStatus)
	group.Delete("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), h.Delete)
}
