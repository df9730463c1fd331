package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/config"
	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/service/auth"
)

type stubAuthService struct {
	auth.Service
	registerErr error
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*repo.User, error) {
	return nil, s.registerErr
}

func TestRegisterProfileLinkFailure(t *testing.T) {
	// The user row is committed even when linking fails, but the request
	// itself must report an internal error, not a success.
	svc := &stubAuthService{registerErr: auth.ErrProfileLinkFailed}
	h := NewAuthHandler(svc, &config.Config{})

	app := fiber.New()
	app.Post("/auth/register", h.Register)

	body := `{"username":"newpatient","password":"longenough1"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusInternalServerError)
	}
}
