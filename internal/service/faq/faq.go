package faq

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entfaqcategory "github.com/dentalperfections/dental_backend/internal/repo/faqcategory"
	entfaqitem "github.com/dentalperfections/dental_backend/internal/repo/faqitem"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateCategoryRequest struct {
	Title        string
	DisplayOrder int
}

type UpdateCategoryRequest struct {
	Title        *string
	DisplayOrder *int
}

type CreateItemRequest struct {
	CategoryID   uuid.UUID
	Question     string
	Answer       string
	DisplayOrder int
}

type UpdateItemRequest struct {
	Question     *string
	Answer       *string
	DisplayOrder *int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListCategories returns every category with its items, both ordered by
	// display_order. This is the whole public FAQ in one call.
	ListCategories(ctx context.Context) ([]*repo.FaqCategory, error)

	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*repo.FaqCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*repo.FaqCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, req CreateItemRequest) (*repo.FaqItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*repo.FaqItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type faqService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &faqService{db: db}
}

func (s *faqService) ListCategories(ctx context.Context) ([]*repo.FaqCategory, error) {
	cats, err := s.db.FaqCategory.Query().
		Order(entfaqcategory.ByDisplayOrder(sql.OrderAsc())).
		WithItems(func(q *repo.FaqItemQuery) {
			q.Order(entfaqitem.ByDisplayOrder(sql.OrderAsc()))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faq categories: %w", err)
	}
	return cats, nil
}

func (s *faqService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*repo.FaqCategory, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	c, err := s.db.FaqCategory.Create().
		SetTitle(title).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create faq category: %w", err)
	}
	return c, nil
}

func (s *faqService) UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*repo.FaqCategory, error) {
	u := s.db.FaqCategory.UpdateOneID(id)

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		u = u.SetTitle(strings.TrimSpace(*req.Title))
	}
	if req.DisplayOrder != nil {
		u = u.SetDisplayOrder(*req.DisplayOrder)
	}

	c, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update faq category: %w", err)
	}
	return c, nil
}

// DeleteCategory removes the category and, through the cascading FK, all of
// its items.
func (s *faqService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := s.db.FaqCategory.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete faq category: %w", err)
	}
	return nil
}

func (s *faqService) CreateItem(ctx context.Context, req CreateItemRequest) (*repo.FaqItem, error) {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		return nil, ErrQuestionAnswerRequired
	}

	exists, err := s.db.FaqCategory.Query().Where(entfaqcategory.ID(req.CategoryID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	item, err := s.db.FaqItem.Create().
		SetCategoryID(req.CategoryID).
		SetQuestion(question).
		SetAnswer(answer).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create faq item: %w", err)
	}
	return item, nil
}

func (s *faqService) UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*repo.FaqItem, error) {
	u := s.db.FaqItem.UpdateOneID(id)

	if req.Question != nil {
		if strings.TrimSpace(*req.Question) == "" {
			return nil, ErrQuestionAnswerRequired
		}
		u = u.SetQuestion(strings.TrimSpace(*req.Question))
	}
	if req.Answer != nil {
		if strings.TrimSpace(*req.Answer) == "" {
			return nil, ErrQuestionAnswerRequired
		}
		u = u.SetAnswer(strings.TrimSpace(*req.Answer))
	}
	if req.DisplayOrder != nil {
		u = u.SetDisplayOrder(*req.DisplayOrder)
	}

	item, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("update faq item: %w", err)
	}
	return item, nil
}

func (s *faqService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := s.db.FaqItem.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete faq item: %w", err)
	}
	return nil
}
