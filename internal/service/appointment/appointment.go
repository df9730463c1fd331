package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entappointment "github.com/dentalperfections/dental_backend/internal/repo/appointment"
	entpatient "github.com/dentalperfections/dental_backend/internal/repo/patient"
	"github.com/dentalperfections/dental_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// CreateRequest is what a patient submits when booking. The owning patient
// and the initial status are never taken from the request: the profile comes
// from the authenticated caller and every new booking starts out pending.
type CreateRequest struct {
	ServiceRequested string
	AppointmentDate  time.Time
	AppointmentTime  string // HH:MM:SS
	Notes            *string
}

// StaffCreateRequest lets front-desk staff book on a patient's behalf.
type StaffCreateRequest struct {
	PatientID        uuid.UUID
	ServiceRequested string
	AppointmentDate  time.Time
	AppointmentTime  string
	Notes            *string
	Status           *string
}

type UpdateRequest struct {
	ServiceRequested *string
	AppointmentDate  *time.Time
	AppointmentTime  *string
	Notes            *string
	Status           *string
}

type ListRequest struct {
	PatientID *uuid.UUID
	Status    *string
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create books an appointment for the calling patient's own profile.
	Create(ctx context.Context, callerUserID uuid.UUID, req CreateRequest) (*repo.Appointment, error)

	// StaffCreate books for an arbitrary patient.
	StaffCreate(ctx context.Context, req StaffCreateRequest) (*repo.Appointment, error)

	GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)

	// GetOwned returns the appointment only if it belongs to the caller's
	// patient profile.
	GetOwned(ctx context.Context, id, callerUserID uuid.UUID) (*repo.Appointment, error)

	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Appointment], error)
	ListOwned(ctx context.Context, callerUserID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Appointment], error)

	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*repo.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	mail   *email.Client
	logger *slog.Logger
}

func New(db *repo.Client, mail *email.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &appointmentService{db: db, mail: mail, logger: logger}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *appointmentService) Create(ctx context.Context, callerUserID uuid.UUID, req CreateRequest) (*repo.Appointment, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(callerUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNoPatientProfile
		}
		return nil, fmt.Errorf("resolve patient profile: %w", err)
	}

	if err := validateBooking(req.ServiceRequested, req.AppointmentTime); err != nil {
		return nil, err
	}

	c := s.db.Appointment.Create().
		SetPatientID(p.ID).
		SetServiceRequested(strings.TrimSpace(req.ServiceRequested)).
		SetAppointmentDate(req.AppointmentDate).
		SetAppointmentTime(req.AppointmentTime).
		SetStatus(entappointment.StatusPENDING)

	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	a, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.notifyReceived(ctx, a)

	return a, nil
}

func (s *appointmentService) StaffCreate(ctx context.Context, req StaffCreateRequest) (*repo.Appointment, error) {
	exists, err := s.db.Patient.Query().Where(entpatient.ID(req.PatientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	if err := validateBooking(req.ServiceRequested, req.AppointmentTime); err != nil {
		return nil, err
	}

	status := entappointment.StatusPENDING
	if req.Status != nil {
		status, err = parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
	}

	c := s.db.Appointment.Create().
		SetPatientID(req.PatientID).
		SetServiceRequested(strings.TrimSpace(req.ServiceRequested)).
		SetAppointmentDate(req.AppointmentDate).
		SetAppointmentTime(req.AppointmentTime).
		SetStatus(status)

	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	return c.Save(ctx)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func (s *appointmentService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	a, err := s.db.Appointment.Query().
		Where(entappointment.ID(id)).
		WithPatient(func(q *repo.PatientQuery) { q.WithUser() }).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

func (s *appointmentService) GetOwned(ctx context.Context, id, callerUserID uuid.UUID) (*repo.Appointment, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner := a.Edges.Patient
	if owner == nil || owner.UserID != callerUserID {
		// Hide the record's existence from non-owners.
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Appointment], error) {
	q := s.db.Appointment.Query()

	if req.PatientID != nil {
		q = q.Where(entappointment.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		q = q.Where(entappointment.StatusEQ(status))
	}

	return s.paginate(ctx, q, req)
}

func (s *appointmentService) ListOwned(ctx context.Context, callerUserID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Appointment], error) {
	q := s.db.Appointment.Query().
		Where(entappointment.HasPatientWith(entpatient.UserID(callerUserID)))

	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		q = q.Where(entappointment.StatusEQ(status))
	}

	return s.paginate(ctx, q, req)
}

func (s *appointmentService) paginate(ctx context.Context, q *repo.AppointmentQuery, req ListRequest) (*PaginatedResult[*repo.Appointment], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	// Soonest first
	q = q.Order(
		entappointment.ByAppointmentDate(sql.OrderAsc()),
		entappointment.ByAppointmentTime(sql.OrderAsc()),
	)

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	items, err := q.
		WithPatient(func(pq *repo.PatientQuery) { pq.WithUser() }).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Appointment]{
		Data:       items,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ---------------------------------------------------------------------------
// Updates
// ---------------------------------------------------------------------------

func (s *appointmentService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	for {
		a, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		u := s.db.Appointment.UpdateOneID(a.ID)
		statusChanged := false

		if req.ServiceRequested != nil {
			if strings.TrimSpace(*req.ServiceRequested) == "" {
				return nil, ErrServiceRequired
			}
			u = u.SetServiceRequested(strings.TrimSpace(*req.ServiceRequested))
		}
		if req.AppointmentDate != nil {
			u = u.SetAppointmentDate(*req.AppointmentDate)
		}
		if req.AppointmentTime != nil {
			if !validTimeOfDay(*req.AppointmentTime) {
				return nil, ErrInvalidTime
			}
			u = u.SetAppointmentTime(*req.AppointmentTime)
		}
		if req.Notes != nil {
			u = u.SetNillableNotes(req.Notes)
		}
		if req.Status != nil {
			status, err := parseStatus(*req.Status)
			if err != nil {
				return nil, err
			}
			statusChanged = status != a.Status
			// The transition is conditional on the status read above, so a
			// concurrent PATCH cannot produce a stale or duplicate
			// notification; a miss re-reads and reapplies.
			u = u.SetStatus(status).Where(entappointment.StatusEQ(a.Status))
		}

		updated, err := u.Save(ctx)
		if err != nil {
			if req.Status != nil && repo.IsNotFound(err) {
				continue
			}
			if repo.IsNotFound(err) {
				return nil, ErrAppointmentNotFound
			}
			return nil, fmt.Errorf("update appointment: %w", err)
		}

		if statusChanged {
			s.notifyStatus(ctx, a, updated)
		}
		return updated, nil
	}
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*repo.Appointment, error) {
	return s.Update(ctx, id, UpdateRequest{Status: &status})
}

func (s *appointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.Appointment.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateBooking(service, timeOfDay string) error {
	if strings.TrimSpace(service) == "" {
		return ErrServiceRequired
	}
	if !validTimeOfDay(timeOfDay) {
		return ErrInvalidTime
	}
	return nil
}

func validTimeOfDay(v string) bool {
	_, err := time.Parse("15:04:05", v)
	return err == nil
}

func parseStatus(v string) (entappointment.Status, error) {
	status := entappointment.Status(strings.ToUpper(strings.TrimSpace(v)))
	switch status {
	case entappointment.StatusPENDING,
		entappointment.StatusCONFIRMED,
		entappointment.StatusCANCELLED,
		entappointment.StatusCOMPLETED:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// notifyReceived emails the booking confirmation. Best-effort: a mail
// failure never fails the booking.
func (s *appointmentService) notifyReceived(ctx context.Context, a *repo.Appointment) {
	data, ok := s.emailData(ctx, a)
	if !ok {
		return
	}
	if err := s.mail.Send(ctx, email.BuildAppointmentReceivedEmail(data)); err != nil {
		s.logger.Warn("failed to send booking email", "appointment_id", a.ID, "error", err)
	}
}

func (s *appointmentService) notifyStatus(ctx context.Context, before, after *repo.Appointment) {
	data, ok := s.emailData(ctx, after)
	if !ok {
		return
	}
	data.Status = string(after.Status)
	if err := s.mail.Send(ctx, email.BuildAppointmentStatusEmail(data)); err != nil {
		s.logger.Warn("failed to send status email",
			"appointment_id", after.ID,
			"from", before.Status, "to", after.Status,
			"error", err)
	}
}

func (s *appointmentService) emailData(ctx context.Context, a *repo.Appointment) (email.AppointmentEmailData, bool) {
	if s.mail == nil {
		return email.AppointmentEmailData{}, false
	}

	owner := a.Edges.Patient
	if owner == nil {
		var err error
		owner, err = s.db.Patient.Query().
			Where(entpatient.ID(a.PatientID)).
			WithUser().
			Only(ctx)
		if err != nil {
			return email.AppointmentEmailData{}, false
		}
	}

	u := owner.Edges.User
	if u == nil || u.Email == "" {
		return email.AppointmentEmailData{}, false
	}

	return email.AppointmentEmailData{
		FirstName:        u.FirstName,
		Email:            u.Email,
		ServiceRequested: a.ServiceRequested,
		AppointmentDate:  a.AppointmentDate,
		AppointmentTime:  a.AppointmentTime,
		Status:           string(a.Status),
	}, true
}
