package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// AuthMethod records which credential produced an identity.
type AuthMethod string

const (
	AuthMethodToken   AuthMethod = "token"   // PASETO bearer token
	AuthMethodSession AuthMethod = "session" // staff session cookie
)

// Identity is the resolved principal for a request. Both authentication
// mechanisms (bearer tokens for patients, session cookies for staff)
// collapse into this one shape, so downstream code never has to care
// which credential was presented.
type Identity struct {
	UserID   uuid.UUID
	Username string
	IsStaff  bool
	Method   AuthMethod

	// SessionID is set for token identities only.
	SessionID *uuid.UUID
}

// WithIdentity stores the resolved identity in the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

// IdentityFromContext retrieves the identity from the context.
// Returns nil if the request is not authenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	v := ctx.Value(keyIdentity)
	if v == nil {
		return nil
	}
	id, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return id
}

// MustIdentity retrieves the identity from the context.
// Panics if not present. Use only behind authentication middleware.
func MustIdentity(ctx context.Context) *Identity {
	id := IdentityFromContext(ctx)
	if id == nil {
		panic("reqctx: identity not found in context")
	}
	return id
}

// IsAuthenticated returns true if an identity exists in the context.
func IsAuthenticated(ctx context.Context) bool {
	return IdentityFromContext(ctx) != nil
}

// UserIDFromContext extracts the user ID from the identity.
// Returns uuid.Nil and false if not authenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id := IdentityFromContext(ctx)
	if id == nil {
		return uuid.Nil, false
	}
	return id.UserID, true
}
