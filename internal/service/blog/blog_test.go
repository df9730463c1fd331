package blog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dentalperfections/dental_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client)
}

func TestCreateLowercasesSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.Create(ctx, CreateRequest{Slug: "  Brushing-Tips  ", Title: "Brushing Tips"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Slug != "brushing-tips" {
		t.Errorf("slug = %q, want %q", p.Slug, "brushing-tips")
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Create(ctx, CreateRequest{Title: "No Slug"}); !errors.Is(err, ErrSlugRequired) {
		t.Errorf("missing slug: err = %v, want ErrSlugRequired", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Slug: "no-title"}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("missing title: err = %v, want ErrTitleRequired", err)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Create(ctx, CreateRequest{Slug: "flossing", Title: "Flossing"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(ctx, CreateRequest{Slug: "flossing", Title: "Flossing Again"})
	if !errors.Is(err, ErrSlugTaken) {
		t.Errorf("err = %v, want ErrSlugTaken", err)
	}
}

func TestGetBySlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Create(ctx, CreateRequest{Slug: "whitening", Title: "Whitening"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	p, err := svc.GetBySlug(ctx, "whitening")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if p.Title != "Whitening" {
		t.Errorf("title = %q, want %q", p.Title, "Whitening")
	}

	if _, err := svc.GetBySlug(ctx, "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestUpdateKeepsSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.Create(ctx, CreateRequest{Slug: "sealants", Title: "Sealants"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Dental Sealants"
	content := "Sealants protect molars."
	updated, err := svc.Update(ctx, p.ID, UpdateRequest{Title: &title, Content: &content})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != "sealants" {
		t.Errorf("slug changed to %q; published URLs must not break", updated.Slug)
	}
	if updated.Title != title {
		t.Errorf("title = %q, want %q", updated.Title, title)
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	times := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, ts := range times {
		ts := ts
		_, err := svc.Create(ctx, CreateRequest{
			Slug:        fmt.Sprintf("post-%d", i),
			Title:       fmt.Sprintf("Post %d", i),
			PublishedAt: &ts,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	res, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Data) != 3 {
		t.Fatalf("len = %d, want 3", len(res.Data))
	}
	if res.Data[0].Slug != "post-1" {
		t.Errorf("first = %q, want post-1 (newest published_at)", res.Data[0].Slug)
	}
}
