package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/service/appointment"
	"github.com/dentalperfections/dental_backend/pkg/reqctx"
)

type stubAppointmentService struct {
	appointment.Service
	createErr error
}

func (s *stubAppointmentService) Create(ctx context.Context, callerUserID uuid.UUID, req appointment.CreateRequest) (*repo.Appointment, error) {
	return nil, s.createErr
}

func newAppointmentApp(svc appointment.Service, id *reqctx.Identity) *fiber.App {
	app := fiber.New()
	h := NewAppointmentHandler(svc)
	app.Post("/appointments", func(c fiber.Ctx) error {
		c.Locals(middleware.LocalIdentity, id)
		return c.Next()
	}, h.Create)
	return app
}

func TestCreateUnlinkedAccountAnswers404(t *testing.T) {
	svc := &stubAppointmentService{createErr: appointment.ErrNoPatientProfile}
	id := &reqctx.Identity{
		UserID:   uuid.New(),
		Username: "newpatient",
		Method:   reqctx.AuthMethodToken,
	}
	app := newAppointmentApp(svc, id)

	body := `{"service_requested":"Cleaning","appointment_date":"2026-09-15","appointment_time":"10:00:00"}`
	req := httptest.NewRequest("POST", "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d; an account with no linked patient resolves like a missing record",
			resp.StatusCode, fiber.StatusNotFound)
	}
}
