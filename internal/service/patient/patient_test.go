package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dentalperfections/dental_backend/internal/repo"
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

func TestUpdatePhoneNormalization(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	_, p := seedPatient(t, client, "phone_owner")

	// National format is normalized to E.164 using the default region.
	phone := "(212) 555-0173"
	updated, err := svc.Update(ctx, p.ID, UpdatePatientRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != "+12125550173" {
		t.Errorf("phone = %q, want %q", updated.Phone, "+12125550173")
	}

	// Garbage is rejected.
	bad := "not-a-number"
	if _, err := svc.Update(ctx, p.ID, UpdatePatientRequest{Phone: &bad}); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("err = %v, want ErrInvalidPhone", err)
	}

	// An empty string clears the number.
	empty := ""
	cleared, err := svc.Update(ctx, p.ID, UpdatePatientRequest{Phone: &empty})
	if err != nil {
		t.Fatalf("Update (clear): %v", err)
	}
	if cleared.Phone != "" {
		t.Errorf("phone = %q, want empty", cleared.Phone)
	}
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	_, p := seedPatient(t, client, "cascade_owner")

	h, err := svc.CreateHistory(ctx, CreateHistoryRequest{
		PatientID:         p.ID,
		VisitDate:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TreatmentProvided: "Root canal",
	})
	if err != nil {
		t.Fatalf("CreateHistory: %v", err)
	}

	if _, err := svc.CreatePrescription(ctx, CreatePrescriptionRequest{
		HistoryID:    h.ID,
		MedicineName: "Amoxicillin",
		Dosage:       "500mg 3x daily",
	}); err != nil {
		t.Fatalf("CreatePrescription: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if n := client.DentalHistory.Query().CountX(ctx); n != 0 {
		t.Errorf("history count after cascade = %d, want 0", n)
	}
	if n := client.Prescription.Query().CountX(ctx); n != 0 {
		t.Errorf("prescription count after cascade = %d, want 0", n)
	}
}

func TestGetProfileHistoryOrdering(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	u, p := seedPatient(t, client, "profile_owner")

	visits := []time.Time{
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, v := range visits {
		if _, err := svc.CreateHistory(ctx, CreateHistoryRequest{
			PatientID:         p.ID,
			VisitDate:         v,
			TreatmentProvided: "Checkup",
		}); err != nil {
			t.Fatalf("CreateHistory: %v", err)
		}
	}

	profile, err := svc.GetProfileByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetProfileByUserID: %v", err)
	}

	history := profile.Edges.History
	if len(history) != 3 {
		t.Fatalf("history len = %d, want 3", len(history))
	}
	// Newest visit first.
	if !history[0].VisitDate.Equal(visits[1]) {
		t.Errorf("first visit = %s, want %s", history[0].VisitDate, visits[1])
	}
	if !history[2].VisitDate.Equal(visits[0]) {
		t.Errorf("last visit = %s, want %s", history[2].VisitDate, visits[0])
	}
}

func TestGetProfileMissing(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	u := client.User.Create().
		SetUsername("unlinked").
		SetPasswordHash("x").
		SetIsStaff(true).
		SaveX(ctx)

	_, err := svc.GetProfileByUserID(ctx, u.ID)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestCreateHistoryValidation(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	_, p := seedPatient(t, client, "hist_owner")

	_, err := svc.CreateHistory(ctx, CreateHistoryRequest{
		PatientID: p.ID,
		VisitDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrTreatmentRequired) {
		t.Errorf("err = %v, want ErrTreatmentRequired", err)
	}
}

func TestCreatePrescriptionValidation(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	_, p := seedPatient(t, client, "rx_owner")
	h, err := svc.CreateHistory(ctx, CreateHistoryRequest{
		PatientID:         p.ID,
		VisitDate:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TreatmentProvided: "Filling",
	})
	if err != nil {
		t.Fatalf("CreateHistory: %v", err)
	}

	_, err = svc.CreatePrescription(ctx, CreatePrescriptionRequest{
		HistoryID: h.ID,
		Dosage:    "1x",
	})
	if !errors.Is(err, ErrMedicineRequired) {
		t.Errorf("err = %v, want ErrMedicineRequired", err)
	}
}
