package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/service/faq"
)

type FaqHandler struct {
	svc faq.Service
}

func NewFaqHandler(svc faq.Service) *FaqHandler {
	return &FaqHandler{svc: svc}
}

func mapFaqError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, faq.ErrCategoryNotFound),
		errors.Is(err, faq.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, faq.ErrTitleRequired),
		errors.Is(err, faq.ErrQuestionAnswerRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /faq
func (h *FaqHandler) List(c fiber.Ctx) error {
	cats, err := h.svc.ListCategories(c.Context())
	if err != nil {
		return mapFaqError(c, err)
	}

	return ok(c, cats)
}

// POST /faq/categories
func (h *FaqHandler) CreateCategory(c fiber.Ctx) error {
	var body struct {
		Title        string `json:"title"`
		DisplayOrder int    `json:"display_order"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cat, err := h.svc.CreateCategory(c.Context(), faq.CreateCategoryRequest{
		Title:        body.Title,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		return mapFaqError(c, err)
	}

	return created(c, cat)
}

// PATCH /faq/categories/:id
func (h *FaqHandler) UpdateCategory(c fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	var body struct {
		Title        *string `json:"title"`
		DisplayOrder *int    `json:"display_order"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cat, err := h.svc.UpdateCategory(c.Context(), categoryID, faq.UpdateCategoryRequest{
		Title:        body.Title,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		return mapFaqError(c, err)
	}

	return ok(c, cat)
}

// DELETE /faq/categories/:id
func (h *FaqHandler) DeleteCategory(c fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	if err := h.svc.DeleteCategory(c.Context(), categoryID); err != nil {
		return mapFaqError(c, err)
	}

	return noContent(c)
}

// POST /faq/items
func (h *FaqHandler) CreateItem(c fiber.Ctx) error {
	var body struct {
		CategoryID   string `json:"category_id"`
		Question     string `json:"question"`
		Answer       string `json:"answer"`
		DisplayOrder int    `json:"display_order"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	categoryID, err := uuid.Parse(body.CategoryID)
	if err != nil {
		return badRequest(c, "invalid category_id")
	}

	item, err := h.svc.CreateItem(c.Context(), faq.CreateItemRequest{
		CategoryID:   categoryID,
		Question:     body.Question,
		Answer:       body.Answer,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		return mapFaqError(c, err)
	}

	return created(c, item)
}

// PATCH /faq/items/:id
func (h *FaqHandler) UpdateItem(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Question     *string `json:"question"`
		Answer       *string `json:"answer"`
		DisplayOrder *int    `json:"display_order"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.UpdateItem(c.Context(), itemID, faq.UpdateItemRequest{
		Question:     body.Question,
		Answer:       body.Answer,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		return mapFaqError(c, err)
	}

	return ok(c, item)
}

// DELETE /faq/items/:id
func (h *FaqHandler) DeleteItem(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	if err := h.svc.DeleteItem(c.Context(), itemID); err != nil {
		return mapFaqError(c, err)
	}

	return noContent(c)
}
