package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

// RequirePermission enforces a resource/action policy for the route.
// Anonymous callers are enforced under the anonymous pseudo-subject, so
// public endpoints (blog, FAQ, published reviews) pass without credentials.
//
// A denied anonymous caller gets 401 (they may simply need to log in);
// a denied authenticated caller gets 403.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		subject := authorize.SubjectOrAnonymous(c.Context())

		if err := auth.MustEnforce(c.Context(), subject, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				if subject == authorize.SubjectAnonymous {
					return fiber.ErrUnauthorized
				}
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
