package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/service/blog"
)

type BlogHandler struct {
	svc blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func mapBlogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, blog.ErrPostNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, blog.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, blog.ErrSlugRequired),
		errors.Is(err, blog.ErrTitleRequired),
		errors.Is(err, blog.ErrInvalidSlug):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /blog
//
// Listings carry summaries only; the full content comes from the
// per-slug endpoint.
func (h *BlogHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	res, err := h.svc.List(c.Context(), blog.ListRequest{Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		return mapBlogError(c, err)
	}

	summaries := lo.Map(res.Data, func(p *repo.BlogPost, _ int) fiber.Map {
		return fiber.Map{
			"id":           p.ID,
			"slug":         p.Slug,
			"title":        p.Title,
			"published_at": p.PublishedAt,
		}
	})

	return ok(c, fiber.Map{
		"data":        summaries,
		"total":       res.Total,
		"page":        res.Page,
		"per_page":    res.PerPage,
		"total_pages": res.TotalPages,
	})
}

// GET /blog/:slug
func (h *BlogHandler) GetBySlug(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return badRequest(c, "slug is required")
	}

	p, err := h.svc.GetBySlug(c.Context(), slug)
	if err != nil {
		return mapBlogError(c, err)
	}

	return ok(c, p)
}

// POST /blog
func (h *BlogHandler) Create(c fiber.Ctx) error {
	var body struct {
		Slug        string  `json:"slug"`
		Title       string  `json:"title"`
		Content     *string `json:"content"`
		PublishedAt *string `json:"published_at"` // RFC3339
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := blog.CreateRequest{
		Slug:    body.Slug,
		Title:   body.Title,
		Content: body.Content,
	}
	if body.PublishedAt != nil {
		t, err := time.Parse(time.RFC3339, *body.PublishedAt)
		if err != nil {
			return badRequest(c, "published_at must be RFC3339")
		}
		req.PublishedAt = &t
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapBlogError(c, err)
	}

	return created(c, p)
}

// PATCH /blog/:id
func (h *BlogHandler) Update(c fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body struct {
		Title       *string `json:"title"`
		Content     *string `json:"content"`
		PublishedAt *string `json:"published_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := blog.UpdateRequest{
		Title:   body.Title,
		Content: body.Content,
	}
	if body.PublishedAt != nil {
		t, err := time.Parse(time.RFC3339, *body.PublishedAt)
		if err != nil {
			return badRequest(c, "published_at must be RFC3339")
		}
		req.PublishedAt = &t
	}

	p, err := h.svc.Update(c.Context(), postID, req)
	if err != nil {
		return mapBlogError(c, err)
	}

	return ok(c, p)
}

// DELETE /blog/:id
func (h *BlogHandler) Delete(c fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	if err := h.svc.Delete(c.Context(), postID); err != nil {
		return mapBlogError(c, err)
	}

	return noContent(c)
}
