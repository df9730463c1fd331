package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entpatient "github.com/dentalperfections/dental_backend/internal/repo/patient"
	entuser "github.com/dentalperfections/dental_backend/internal/repo/user"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	GetByUsername(ctx context.Context, username string) (*repo.User, error)

	// EnsurePatientProfile links a non-staff user to a patient profile,
	// creating the profile and granting the patient role if missing.
	// Idempotent: calling it twice never creates a second profile.
	EnsurePatientProfile(ctx context.Context, u *repo.User) (*repo.Patient, error)
}

type UserService struct {
	client    *repo.Client
	authorize authorize.IAuthorization
	logger    *slog.Logger
}

func New(client *repo.Client, authz authorize.IAuthorization, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		client:    client,
		authorize: authz,
		logger:    logger,
	}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// GetByUsername retrieves a user by their unique username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*repo.User, error) {
	u, err := s.client.User.Query().
		Where(entuser.Username(username)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// EnsurePatientProfile guarantees the account/profile pairing: every
// non-staff user owns exactly one patient profile. Staff accounts never
// get one. The user row is already committed when this runs; a failure
// here leaves the user intact and is reported to the caller.
func (s *UserService) EnsurePatientProfile(ctx context.Context, u *repo.User) (*repo.Patient, error) {
	if u.IsStaff {
		return nil, nil
	}

	existing, err := s.client.Patient.Query().
		Where(entpatient.UserID(u.ID)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("query patient profile: %w", err)
	}

	p, err := s.client.Patient.Create().
		SetUserID(u.ID).
		Save(ctx)
	if err != nil {
		// A concurrent linker may have won the race; the unique user_id
		// constraint makes that safe to re-read.
		if repo.IsConstraintError(err) {
			return s.client.Patient.Query().Where(entpatient.UserID(u.ID)).Only(ctx)
		}
		return nil, fmt.Errorf("create patient profile: %w", err)
	}

	if err := authorize.AssignPatientRole(ctx, s.authorize, u.ID.String()); err != nil {
		s.logger.Error("failed to grant patient role", "user_id", u.ID, "error", err)
		return nil, fmt.Errorf("grant patient role: %w", err)
	}

	s.logger.Info("linked patient profile", "user_id", u.ID, "patient_id", p.ID)
	return p, nil
}

// DisplayName resolves the name shown publicly for a user: full name when
// set, username otherwise. Review snapshots are taken from this.
func DisplayName(u *repo.User) string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	return u.Username
}
