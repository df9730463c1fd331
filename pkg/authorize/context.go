package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// SubjectFromContext extracts the GroupSubject (user ID) from the
// authenticated identity stored in context by the HTTP middleware.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id := reqctx.IdentityFromContext(ctx)
	if id == nil || id.UserID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}
	return GroupSubject(id.UserID.String()), nil
}

// SubjectOrAnonymous resolves the enforcement subject for a request:
// the authenticated user's ID, or the anonymous pseudo-subject when no
// identity is present. Public endpoints enforce with this.
func SubjectOrAnonymous(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		return SubjectAnonymous
	}
	return subject
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id := reqctx.IdentityFromContext(ctx)
	if id == nil || id.UserID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}
	return id.UserID, nil
}
