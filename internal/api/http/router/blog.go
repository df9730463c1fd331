package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

func (r *Router) registerBlogRoutes(
	api fiber.Router,
	h *handler.BlogHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/blog")

	group.Get("/", requirePerm(authorize.ResourceBlogPost, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceBlogPost, authorize.ActionCreate), h.Create)
	group.Get("/:slug", requirePerm(authorize.ResourceBlogPost, authorize.ActionRead), h.GetBySlug)
	group.Patch("/:id", requirePerm(authorize.ResourceBlogPost, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceBlogPost, authorize.ActionDelete), h.Delete)
}
