package faq

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client, New(client)
}

func TestListCategoriesOrdering(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	billing, err := svc.CreateCategory(ctx, CreateCategoryRequest{Title: "Billing", DisplayOrder: 2})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	general, err := svc.CreateCategory(ctx, CreateCategoryRequest{Title: "General", DisplayOrder: 1})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	// Items inserted out of display order.
	for _, it := range []struct {
		q     string
		order int
	}{
		{"Do you take insurance?", 2},
		{"How do I pay?", 1},
	} {
		if _, err := svc.CreateItem(ctx, CreateItemRequest{
			CategoryID:   billing.ID,
			Question:     it.q,
			Answer:       "See our billing page.",
			DisplayOrder: it.order,
		}); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	cats, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("len = %d, want 2", len(cats))
	}
	if cats[0].ID != general.ID {
		t.Errorf("first category = %q, want General (lower display_order)", cats[0].Title)
	}

	items := cats[1].Edges.Items
	if len(items) != 2 {
		t.Fatalf("billing items len = %d, want 2", len(items))
	}
	if items[0].Question != "How do I pay?" {
		t.Errorf("first item = %q, want lower display_order first", items[0].Question)
	}
}

func TestCreateItemUnknownCategory(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	_, err := svc.CreateItem(ctx, CreateItemRequest{
		CategoryID: uuid.New(),
		Question:   "Q?",
		Answer:     "A.",
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	if _, err := svc.CreateCategory(ctx, CreateCategoryRequest{Title: "  "}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("blank title: err = %v, want ErrTitleRequired", err)
	}

	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Title: "General"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Question: "Q?"}); !errors.Is(err, ErrQuestionAnswerRequired) {
		t.Errorf("missing answer: err = %v, want ErrQuestionAnswerRequired", err)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Title: "Hygiene"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := svc.CreateItem(ctx, CreateItemRequest{
		CategoryID: cat.ID,
		Question:   "How often should I floss?",
		Answer:     "Daily.",
	}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	if n := client.FaqItem.Query().CountX(ctx); n != 0 {
		t.Errorf("item count after cascade = %d, want 0", n)
	}
}
