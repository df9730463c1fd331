package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/service/auth"
	"github.com/dentalperfections/dental_backend/pkg/reqctx"
)

const LocalIdentity = "identity"

// Identify resolves the caller's identity from whichever credential the
// request carries: a Bearer PASETO access token or the staff session cookie.
// Both collapse into one *reqctx.Identity stored in locals and on the
// request context, so handlers never care which credential was presented.
//
// A request with no credential continues anonymously. A request with a
// credential that fails to verify is rejected outright rather than being
// silently downgraded to anonymous.
func Identify(svc auth.Service, cookieName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if h := c.Get("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return fiber.ErrUnauthorized
			}

			u, claims, err := svc.ResolveAccessToken(c.Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return fiber.ErrUnauthorized
			}

			return withIdentity(c, &reqctx.Identity{
				UserID:    u.ID,
				Username:  u.Username,
				IsStaff:   u.IsStaff,
				Method:    reqctx.AuthMethodToken,
				SessionID: claims.SessionID,
			})
		}

		if token := c.Cookies(cookieName); token != "" {
			u, err := svc.ResolveStaffSession(c.Context(), token)
			if err != nil {
				return fiber.ErrUnauthorized
			}

			return withIdentity(c, &reqctx.Identity{
				UserID:   u.ID,
				Username: u.Username,
				IsStaff:  u.IsStaff,
				Method:   reqctx.AuthMethodSession,
			})
		}

		return c.Next()
	}
}

func withIdentity(c fiber.Ctx, id *reqctx.Identity) error {
	c.Locals(LocalIdentity, id)
	c.SetContext(reqctx.WithIdentity(c.Context(), id))
	return c.Next()
}

// RequireAuth rejects anonymous requests. Route it after Identify.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !reqctx.IsAuthenticated(c.Context()) {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// IdentityFromFiber retrieves the resolved identity from Fiber locals.
func IdentityFromFiber(c fiber.Ctx) (*reqctx.Identity, bool) {
	v := c.Locals(LocalIdentity)
	id, ok := v.(*reqctx.Identity)
	return id, ok && id != nil
}
