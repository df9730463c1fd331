package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/config"
	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
	cfg *config.Config
}

func NewAuthHandler(svc auth.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidUsername),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrUsernameAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c)
	case errors.Is(err, auth.ErrNotStaff):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Register(c.Context(), auth.RegisterRequest{
		Username:  body.Username,
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		// ErrProfileLinkFailed falls through to 500: the committed account
		// stands, but the request did not produce a usable patient.
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout  (requires Identify + RequireAuth)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid || id.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *id.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// POST /api/v1/auth/staff/login
func (h *AuthHandler) StaffLogin(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	token, sess, err := h.svc.StaffLogin(c.Context(), auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	h.setStaffCookie(c, token, sess.ExpiresAt)

	return ok(c, fiber.Map{
		"username":   sess.Username,
		"expires_at": sess.ExpiresAt,
	})
}

// POST /api/v1/auth/staff/logout
func (h *AuthHandler) StaffLogout(c fiber.Ctx) error {
	token := c.Cookies(h.cfg.Authentication.StaffSessionCookie)
	if err := h.svc.StaffLogout(c.Context(), token); err != nil {
		return internalError(c)
	}

	h.clearStaffCookie(c)
	return noContent(c)
}

func (h *AuthHandler) setStaffCookie(c fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Authentication.StaffSessionCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.cfg.Authentication.StaffSessionCookieHTTPS,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearStaffCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Authentication.StaffSessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Authentication.StaffSessionCookieHTTPS,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
