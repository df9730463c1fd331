package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/dentalperfections/dental_backend/internal/repo"
	entdentalhistory "github.com/dentalperfections/dental_backend/internal/repo/dentalhistory"
	entpatient "github.com/dentalperfections/dental_backend/internal/repo/patient"
	entprescription "github.com/dentalperfections/dental_backend/internal/repo/prescription"
)

// defaultPhoneRegion is assumed when a patient phone number has no
// international prefix.
const defaultPhoneRegion = "US"

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

type ListPatientsRequest struct {
	Page    int
	PerPage int
	Order   string // asc | desc, by created_at
}

type UpdatePatientRequest struct {
	Phone       *string
	DateOfBirth *time.Time
}

type CreateHistoryRequest struct {
	PatientID         uuid.UUID
	VisitDate         time.Time
	Notes             *string
	TreatmentProvided string
}

type UpdateHistoryRequest struct {
	VisitDate         *time.Time
	Notes             *string
	TreatmentProvided *string
}

type ListHistoryRequest struct {
	PatientID *uuid.UUID
	Page      int
	PerPage   int
}

type CreatePrescriptionRequest struct {
	HistoryID    uuid.UUID
	MedicineName string
	Dosage       string
	Instructions *string
}

type UpdatePrescriptionRequest struct {
	MedicineName *string
	Dosage       *string
	Instructions *string
}

type ListPrescriptionsRequest struct {
	HistoryID *uuid.UUID
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Patient records (staff)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)
	Delete(ctx context.Context, patientID uuid.UUID) error

	// Self profile: the patient record linked to the calling account,
	// with visit history (newest first) and nested prescriptions.
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)

	// Dental history (staff)
	CreateHistory(ctx context.Context, req CreateHistoryRequest) (*repo.DentalHistory, error)
	GetHistory(ctx context.Context, historyID uuid.UUID) (*repo.DentalHistory, error)
	ListHistory(ctx context.Context, req ListHistoryRequest) (*PaginatedResult[*repo.DentalHistory], error)
	UpdateHistory(ctx context.Context, historyID uuid.UUID, req UpdateHistoryRequest) (*repo.DentalHistory, error)
	DeleteHistory(ctx context.Context, historyID uuid.UUID) error

	// Prescriptions (staff)
	CreatePrescription(ctx context.Context, req CreatePrescriptionRequest) (*repo.Prescription, error)
	GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*repo.Prescription, error)
	ListPrescriptions(ctx context.Context, req ListPrescriptionsRequest) (*PaginatedResult[*repo.Prescription], error)
	UpdatePrescription(ctx context.Context, prescriptionID uuid.UUID, req UpdatePrescriptionRequest) (*repo.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

// ---------------------------------------------------------------------------
// Patient records
// ---------------------------------------------------------------------------

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query()

	if req.Order == "asc" {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.WithUser().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.Phone != nil {
		formatted, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		if formatted == "" {
			u = u.ClearPhone()
		} else {
			u = u.SetPhone(formatted)
		}
	}
	if req.DateOfBirth != nil {
		u = u.SetDateOfBirth(*req.DateOfBirth)
	}

	return u.Save(ctx)
}

// Delete removes the patient record. Dental history, prescriptions and
// appointments hang off cascading foreign keys, so the whole clinical file
// disappears in one statement.
func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	err := s.db.Patient.DeleteOneID(patientID).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (s *patientService) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		WithUser().
		WithHistory(func(q *repo.DentalHistoryQuery) {
			q.Order(entdentalhistory.ByVisitDate(sql.OrderDesc())).
				WithPrescriptions()
		}).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Dental history
// ---------------------------------------------------------------------------

func (s *patientService) CreateHistory(ctx context.Context, req CreateHistoryRequest) (*repo.DentalHistory, error) {
	if strings.TrimSpace(req.TreatmentProvided) == "" {
		return nil, ErrTreatmentRequired
	}

	// The FK would fail anyway, but a typed error beats a constraint error.
	if _, err := s.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	c := s.db.DentalHistory.Create().
		SetPatientID(req.PatientID).
		SetVisitDate(req.VisitDate).
		SetTreatmentProvided(req.TreatmentProvided)

	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	return c.Save(ctx)
}

func (s *patientService) GetHistory(ctx context.Context, historyID uuid.UUID) (*repo.DentalHistory, error) {
	h, err := s.db.DentalHistory.Query().
		Where(entdentalhistory.ID(historyID)).
		WithPrescriptions().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("get history: %w", err)
	}
	return h, nil
}

func (s *patientService) ListHistory(ctx context.Context, req ListHistoryRequest) (*PaginatedResult[*repo.DentalHistory], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.DentalHistory.Query()
	if req.PatientID != nil {
		q = q.Where(entdentalhistory.PatientID(*req.PatientID))
	}

	// Newest visit first
	q = q.Order(entdentalhistory.ByVisitDate(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}

	entries, err := q.WithPrescriptions().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.DentalHistory]{
		Data:       entries,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) UpdateHistory(ctx context.Context, historyID uuid.UUID, req UpdateHistoryRequest) (*repo.DentalHistory, error) {
	h, err := s.GetHistory(ctx, historyID)
	if err != nil {
		return nil, err
	}

	u := s.db.DentalHistory.UpdateOne(h)

	if req.VisitDate != nil {
		u = u.SetVisitDate(*req.VisitDate)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	if req.TreatmentProvided != nil {
		if strings.TrimSpace(*req.TreatmentProvided) == "" {
			return nil, ErrTreatmentRequired
		}
		u = u.SetTreatmentProvided(*req.TreatmentProvided)
	}

	return u.Save(ctx)
}

func (s *patientService) DeleteHistory(ctx context.Context, historyID uuid.UUID) error {
	err := s.db.DentalHistory.DeleteOneID(historyID).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrHistoryNotFound
		}
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

func (s *patientService) CreatePrescription(ctx context.Context, req CreatePrescriptionRequest) (*repo.Prescription, error) {
	if strings.TrimSpace(req.MedicineName) == "" {
		return nil, ErrMedicineRequired
	}

	if _, err := s.GetHistory(ctx, req.HistoryID); err != nil {
		return nil, err
	}

	c := s.db.Prescription.Create().
		SetHistoryID(req.HistoryID).
		SetMedicineName(req.MedicineName).
		SetDosage(req.Dosage)

	if req.Instructions != nil {
		c = c.SetNillableInstructions(req.Instructions)
	}

	return c.Save(ctx)
}

func (s *patientService) GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*repo.Prescription, error) {
	p, err := s.db.Prescription.Get(ctx, prescriptionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return p, nil
}

func (s *patientService) ListPrescriptions(ctx context.Context, req ListPrescriptionsRequest) (*PaginatedResult[*repo.Prescription], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Prescription.Query()
	if req.HistoryID != nil {
		q = q.Where(entprescription.HistoryID(*req.HistoryID))
	}
	q = q.Order(entprescription.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prescriptions: %w", err)
	}

	items, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Prescription]{
		Data:       items,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) UpdatePrescription(ctx context.Context, prescriptionID uuid.UUID, req UpdatePrescriptionRequest) (*repo.Prescription, error) {
	p, err := s.GetPrescription(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}

	u := s.db.Prescription.UpdateOne(p)

	if req.MedicineName != nil {
		if strings.TrimSpace(*req.MedicineName) == "" {
			return nil, ErrMedicineRequired
		}
		u = u.SetMedicineName(*req.MedicineName)
	}
	if req.Dosage != nil {
		u = u.SetDosage(*req.Dosage)
	}
	if req.Instructions != nil {
		u = u.SetNillableInstructions(req.Instructions)
	}

	return u.Save(ctx)
}

func (s *patientService) DeletePrescription(ctx context.Context, prescriptionID uuid.UUID) error {
	err := s.db.Prescription.DeleteOneID(prescriptionID).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPrescriptionNotFound
		}
		return fmt.Errorf("delete prescription: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// normalizePhone validates and reformats a phone number to E.164.
// An empty string clears the number.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
