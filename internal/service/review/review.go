package review

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entreview "github.com/dentalperfections/dental_backend/internal/repo/review"
	"github.com/dentalperfections/dental_backend/internal/service/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	ReviewText string
	Rating     int
}

type ListRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create posts a review as the calling user. The display name is
	// snapshotted at creation time and never recomputed, so later profile
	// or account changes leave published reviews untouched.
	Create(ctx context.Context, callerUserID uuid.UUID, req CreateRequest) (*repo.Review, error)

	GetByID(ctx context.Context, id uuid.UUID) (*repo.Review, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Review], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reviewService struct {
	db    *repo.Client
	users user.Service
}

func New(db *repo.Client, users user.Service) Service {
	return &reviewService{db: db, users: users}
}

func (s *reviewService) Create(ctx context.Context, callerUserID uuid.UUID, req CreateRequest) (*repo.Review, error) {
	text := strings.TrimSpace(req.ReviewText)
	if text == "" {
		return nil, ErrTextRequired
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	u, err := s.users.GetByID(ctx, callerUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	r, err := s.db.Review.Create().
		SetUserID(u.ID).
		SetPatientName(user.DisplayName(u)).
		SetReviewText(text).
		SetRating(rating).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return r, nil
}

func (s *reviewService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Review, error) {
	r, err := s.db.Review.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return r, nil
}

func (s *reviewService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Review], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Review.Query().
		Order(entreview.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	items, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Review]{
		Data:       items,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.Review.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
