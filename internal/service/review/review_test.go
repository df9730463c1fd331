package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/repo/enttest"
	"github.com/dentalperfections/dental_backend/internal/service/user"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client, New(client, user.New(client, nil, nil))
}

func TestCreateSnapshotsName(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	u := client.User.Create().
		SetUsername("jdoe").
		SetPasswordHash("x").
		SetFirstName("Jane").
		SetLastName("Doe").
		SaveX(ctx)

	r, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: "Great care.", Rating: 4})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.PatientName != "Jane Doe" {
		t.Errorf("patient_name = %q, want %q", r.PatientName, "Jane Doe")
	}

	// A later name change must not touch the published review.
	client.User.UpdateOneID(u.ID).SetFirstName("Janet").SaveX(ctx)

	got, err := svc.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PatientName != "Jane Doe" {
		t.Errorf("after rename patient_name = %q, want %q", got.PatientName, "Jane Doe")
	}
}

func TestCreateDefaultRating(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	u := client.User.Create().SetUsername("nostars").SetPasswordHash("x").SaveX(ctx)

	r, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: "No rating given."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.Rating != 5 {
		t.Errorf("rating = %d, want default 5", r.Rating)
	}

	// Username is the fallback display name.
	if r.PatientName != "nostars" {
		t.Errorf("patient_name = %q, want %q", r.PatientName, "nostars")
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	u := client.User.Create().SetUsername("critic").SetPasswordHash("x").SaveX(ctx)

	if _, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: "   "}); !errors.Is(err, ErrTextRequired) {
		t.Errorf("blank text: err = %v, want ErrTextRequired", err)
	}
	if _, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: "ok", Rating: 6}); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("rating 6: err = %v, want ErrInvalidRating", err)
	}
	if _, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: "ok", Rating: -1}); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("rating -1: err = %v, want ErrInvalidRating", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	u := client.User.Create().SetUsername("serial_reviewer").SetPasswordHash("x").SaveX(ctx)

	for i := 1; i <= 3; i++ {
		if _, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: fmt.Sprintf("visit %d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	res, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 3 || len(res.Data) != 3 {
		t.Fatalf("total = %d, len = %d, want 3", res.Total, len(res.Data))
	}
	if res.Data[0].ReviewText != "visit 3" {
		t.Errorf("first item = %q, want newest (visit 3)", res.Data[0].ReviewText)
	}
}

func TestDeleteMissing(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	u := client.User.Create().SetUsername("gone").SetPasswordHash("x").SaveX(ctx)
	r, err := svc.Create(ctx, u.ID, CreateRequest{ReviewText: "bye"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, r.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("second delete: err = %v, want ErrReviewNotFound", err)
	}
}
