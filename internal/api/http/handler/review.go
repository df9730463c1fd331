package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/service/review"
)

type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func mapReviewError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, review.ErrReviewNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, review.ErrTextRequired),
		errors.Is(err, review.ErrInvalidRating):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /reviews
func (h *ReviewHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	res, err := h.svc.List(c.Context(), review.ListRequest{Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		return mapReviewError(c, err)
	}

	return ok(c, res)
}

// GET /reviews/:id
func (h *ReviewHandler) Get(c fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	r, err := h.svc.GetByID(c.Context(), reviewID)
	if err != nil {
		return mapReviewError(c, err)
	}

	return ok(c, r)
}

// POST /reviews
func (h *ReviewHandler) Create(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ReviewText string `json:"review_text"`
		Rating     int    `json:"rating"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Create(c.Context(), id.UserID, review.CreateRequest{
		ReviewText: body.ReviewText,
		Rating:     body.Rating,
	})
	if err != nil {
		return mapReviewError(c, err)
	}

	return created(c, r)
}

// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	if err := h.svc.Delete(c.Context(), reviewID); err != nil {
		return mapReviewError(c, err)
	}

	return noContent(c)
}
