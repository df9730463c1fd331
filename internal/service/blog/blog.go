package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entblogpost "github.com/dentalperfections/dental_backend/internal/repo/blogpost"
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
	Slug        string
	Title       string
	Content     *string
	PublishedAt *time.Time
}

// UpdateRequest deliberately has no slug: slugs are permanent identifiers
// and published URLs must not break.
type UpdateRequest struct {
	Title       *string
	Content     *string
	PublishedAt *time.Time
}

type ListRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetBySlug(ctx context.Context, slug string) (*repo.BlogPost, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.BlogPost], error)

	Create(ctx context.Context, req CreateRequest) (*repo.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type blogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &blogService{db: db}
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*repo.BlogPost, error) {
	p, err := s.db.BlogPost.Query().
		Where(entblogpost.Slug(slug)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (s *blogService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.BlogPost], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.BlogPost.Query().
		Order(entblogpost.ByPublishedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	posts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.BlogPost]{
		Data:       posts,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *blogService) Create(ctx context.Context, req CreateRequest) (*repo.BlogPost, error) {
	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	title := strings.TrimSpace(req.Title)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	c := s.db.BlogPost.Create().
		SetSlug(slug).
		SetTitle(title)

	if req.Content != nil {
		c = c.SetNillableContent(req.Content)
	}
	if req.PublishedAt != nil {
		c = c.SetPublishedAt(*req.PublishedAt)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		if repo.IsValidationError(err) {
			return nil, ErrInvalidSlug
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.BlogPost, error) {
	u := s.db.BlogPost.UpdateOneID(id)

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		u = u.SetTitle(strings.TrimSpace(*req.Title))
	}
	if req.Content != nil {
		u = u.SetNillableContent(req.Content)
	}
	if req.PublishedAt != nil {
		u = u.SetPublishedAt(*req.PublishedAt)
	}

	p, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.BlogPost.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
