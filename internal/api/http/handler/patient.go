package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrProfileNotFound),
		errors.Is(err, patient.ErrHistoryNotFound),
		errors.Is(err, patient.ErrPrescriptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrTreatmentRequired),
		errors.Is(err, patient.ErrMedicineRequired),
		errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient records
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Order   string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	res, err := h.svc.List(c.Context(), patient.ListPatientsRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Order:   q.Order,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, res)
}

// GET /patients/me
func (h *PatientHandler) Me(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetProfileByUserID(c.Context(), id.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// GET /patients/:id
//
// Patients hold read permission on their own record only; a lookup of
// someone else's ID answers 404 rather than confirming it exists.
func (h *PatientHandler) Get(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	if id, valid := middleware.IdentityFromFiber(c); valid && !id.IsStaff && p.UserID != id.UserID {
		return notFound(c, patient.ErrPatientNotFound.Error())
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdatePatientRequest{Phone: body.Phone}
	if body.DateOfBirth != nil {
		t, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return badRequest(c, "date_of_birth must be YYYY-MM-DD")
		}
		req.DateOfBirth = &t
	}

	p, err := h.svc.Update(c.Context(), patientID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Dental history
// ---------------------------------------------------------------------------

// GET /dental-histories
func (h *PatientHandler) ListHistory(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListHistoryRequest{Page: q.Page, PerPage: q.PerPage}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}

	res, err := h.svc.ListHistory(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, res)
}

// POST /dental-histories
func (h *PatientHandler) CreateHistory(c fiber.Ctx) error {
	var body struct {
		PatientID         string  `json:"patient_id"`
		VisitDate         string  `json:"visit_date"` // YYYY-MM-DD
		Notes             *string `json:"notes"`
		TreatmentProvided string  `json:"treatment_provided"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	visitDate, err := time.Parse("2006-01-02", body.VisitDate)
	if err != nil {
		return badRequest(c, "visit_date must be YYYY-MM-DD")
	}

	rec, err := h.svc.CreateHistory(c.Context(), patient.CreateHistoryRequest{
		PatientID:         patientID,
		VisitDate:         visitDate,
		Notes:             body.Notes,
		TreatmentProvided: body.TreatmentProvided,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, rec)
}

// GET /dental-histories/:id
func (h *PatientHandler) GetHistory(c fiber.Ctx) error {
	historyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid history id")
	}

	rec, err := h.svc.GetHistory(c.Context(), historyID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, rec)
}

// PATCH /dental-histories/:id
func (h *PatientHandler) UpdateHistory(c fiber.Ctx) error {
	historyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid history id")
	}

	var body struct {
		VisitDate         *string `json:"visit_date"`
		Notes             *string `json:"notes"`
		TreatmentProvided *string `json:"treatment_provided"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateHistoryRequest{
		Notes:             body.Notes,
		TreatmentProvided: body.TreatmentProvided,
	}
	if body.VisitDate != nil {
		t, err := time.Parse("2006-01-02", *body.VisitDate)
		if err != nil {
			return badRequest(c, "visit_date must be YYYY-MM-DD")
		}
		req.VisitDate = &t
	}

	rec, err := h.svc.UpdateHistory(c.Context(), historyID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, rec)
}

// DELETE /dental-histories/:id
func (h *PatientHandler) DeleteHistory(c fiber.Ctx) error {
	historyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid history id")
	}

	if err := h.svc.DeleteHistory(c.Context(), historyID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

// GET /prescriptions
func (h *PatientHandler) ListPrescriptions(c fiber.Ctx) error {
	var q struct {
		HistoryID string `query:"history_id"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListPrescriptionsRequest{Page: q.Page, PerPage: q.PerPage}
	if q.HistoryID != "" {
		id, err := uuid.Parse(q.HistoryID)
		if err != nil {
			return badRequest(c, "invalid history_id")
		}
		req.HistoryID = &id
	}

	res, err := h.svc.ListPrescriptions(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, res)
}

// POST /prescriptions
func (h *PatientHandler) CreatePrescription(c fiber.Ctx) error {
	var body struct {
		HistoryID    string  `json:"history_id"`
		MedicineName string  `json:"medicine_name"`
		Dosage       string  `json:"dosage"`
		Instructions *string `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	historyID, err := uuid.Parse(body.HistoryID)
	if err != nil {
		return badRequest(c, "invalid history_id")
	}

	rec, err := h.svc.CreatePrescription(c.Context(), patient.CreatePrescriptionRequest{
		HistoryID:    historyID,
		MedicineName: body.MedicineName,
		Dosage:       body.Dosage,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, rec)
}

// GET /prescriptions/:id
func (h *PatientHandler) GetPrescription(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	rec, err := h.svc.GetPrescription(c.Context(), prescriptionID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, rec)
}

// PATCH /prescriptions/:id
func (h *PatientHandler) UpdatePrescription(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		MedicineName *string `json:"medicine_name"`
		Dosage       *string `json:"dosage"`
		Instructions *string `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.UpdatePrescription(c.Context(), prescriptionID, patient.UpdatePrescriptionRequest{
		MedicineName: body.MedicineName,
		Dosage:       body.Dosage,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, rec)
}

// DELETE /prescriptions/:id
func (h *PatientHandler) DeletePrescription(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	if err := h.svc.DeletePrescription(c.Context(), prescriptionID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}
