package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

func (r *Router) registerReviewRoutes(
	api fiber.Router,
	h *handler.ReviewHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/reviews")

	group.Get("/", requirePerm(authorize.ResourceReview, authorize.ActionList), h.List)
	group.Get("/:id", requirePerm(authorize.ResourceReview, authorize.ActionRead), h.Get)
	group.Post("/", requirePerm(authorize.ResourceReview, authorize.ActionCreate), h.Create)
	group.Delete("/:id", requirePerm(authorize.ResourceReview, authorize.ActionDelete), h.Delete)
}
