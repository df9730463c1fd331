package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

func (r *Router) registerFaqRoutes(
	api fiber.Router,
	h *handler.FaqHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/faq")

	group.Get("/", requirePerm(authorize.ResourceFaq, authorize.ActionList), h.List)

	categories := group.Group("/categories")
	categories.Post("/", requirePerm(authorize.ResourceFaq, authorize.ActionCreate), h.CreateCategory)
	categories.Patch("/:id", requirePerm(authorize.ResourceFaq, authorize.ActionUpdate), h.UpdateCategory)
	categories.Delete("/:id", requirePerm(authorize.ResourceFaq, authorize.ActionDelete), h.DeleteCategory)

	items := group.Group("/items")
	items.Post("/", requirePerm(authorize.ResourceFaq, authorize.ActionCreate), h.CreateItem)
	items.Patch("/:id", requirePerm(authorize.ResourceFaq, authorize.ActionUpdate), h.UpdateItem)
	items.Delete("/:id", requirePerm(authorize.ResourceFaq, authorize.ActionDelete), h.DeleteItem)
}
