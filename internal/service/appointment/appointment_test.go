package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entappointment "github.com/dentalperfections/dental_backend/internal/repo/appointment"
	"github.com/dentalperfections/dental_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedPatient(t *testing.T, client *repo.Client, username string) (*repo.User, *repo.Patient) {
	t.Helper()
	ctx := context.Background()
	u := client.User.Create().
		SetUsername(username).
		SetPasswordHash("x").
		SetIsStaff(false).
		SaveX(ctx)
	p := client.Patient.Create().SetUserID(u.ID).SaveX(ctx)
	return u, p
}

func TestCreateForcesPending(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	u, _ := seedPatient(t, client, "booker")

	a, err := svc.Create(ctx, u.ID, CreateRequest{
		ServiceRequested: "Teeth Whitening",
		AppointmentDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime:  "10:30:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Status != entappointment.StatusPENDING {
		t.Errorf("status = %s, want PENDING", a.Status)
	}
}

func TestCreateWithoutProfile(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	// A user with no linked patient profile (e.g. staff).
	u := client.User.Create().
		SetUsername("no_profile").
		SetPasswordHash("x").
		SetIsStaff(true).
		SaveX(ctx)

	_, err := svc.Create(ctx, u.ID, CreateRequest{
		ServiceRequested: "Cleaning",
		AppointmentDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime:  "10:30:00",
	})
	if !errors.Is(err, ErrNoPatientProfile) {
		t.Errorf("err = %v, want ErrNoPatientProfile", err)
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	u, _ := seedPatient(t, client, "validator")
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"missing service", CreateRequest{AppointmentDate: date, AppointmentTime: "10:00:00"}, ErrServiceRequired},
		{"bad time", CreateRequest{ServiceRequested: "Cleaning", AppointmentDate: date, AppointmentTime: "25:00:00"}, ErrInvalidTime},
		{"time without seconds", CreateRequest{ServiceRequested: "Cleaning", AppointmentDate: date, AppointmentTime: "10:30"}, ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, u.ID, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetOwnedHidesOthers(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	owner, _ := seedPatient(t, client, "owner")
	other, _ := seedPatient(t, client, "other")

	a, err := svc.Create(ctx, owner.ID, CreateRequest{
		ServiceRequested: "Filling",
		AppointmentDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime:  "09:00:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.GetOwned(ctx, a.ID, owner.ID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	// Non-owner gets not-found, never forbidden: the record's existence
	// must not leak.
	_, err = svc.GetOwned(ctx, a.ID, other.ID)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("err = %v, want ErrAppointmentNotFound", err)
	}
}

func TestListOwnedScoping(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	alice, _ := seedPatient(t, client, "alice")
	bob, _ := seedPatient(t, client, "bob")

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	for i, owner := range []*repo.User{alice, alice, bob} {
		_, err := svc.Create(ctx, owner.ID, CreateRequest{
			ServiceRequested: "Checkup",
			AppointmentDate:  date.AddDate(0, 0, i),
			AppointmentTime:  "11:00:00",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	res, err := svc.ListOwned(ctx, alice.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("alice sees %d appointments, want 2", res.Total)
	}

	all, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("unscoped list sees %d, want 3", all.Total)
	}
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	u, _ := seedPatient(t, client, "status_patient")
	a, err := svc.Create(ctx, u.ID, CreateRequest{
		ServiceRequested: "Extraction",
		AppointmentDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime:  "14:00:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Lower-case input is accepted and normalized.
	updated, err := svc.UpdateStatus(ctx, a.ID, "confirmed")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != entappointment.StatusCONFIRMED {
		t.Errorf("status = %s, want CONFIRMED", updated.Status)
	}

	// Re-asserting the current status is a no-op transition, not an error:
	// the guarded write matches the row it just read.
	same, err := svc.UpdateStatus(ctx, a.ID, "CONFIRMED")
	if err != nil {
		t.Fatalf("UpdateStatus (same value): %v", err)
	}
	if same.Status != entappointment.StatusCONFIRMED {
		t.Errorf("status = %s, want CONFIRMED", same.Status)
	}

	if _, err := svc.UpdateStatus(ctx, a.ID, "DONE"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestStaffCreateUnknownPatient(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, nil, nil)

	_, err := svc.StaffCreate(ctx, StaffCreateRequest{
		PatientID:        uuid.New(),
		ServiceRequested: "Cleaning",
		AppointmentDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime:  "10:00:00",
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound", err)
	}
}
