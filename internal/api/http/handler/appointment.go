package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	// A self-scoped action with no linked patient profile resolves to the
	// same 404 as a missing record.
	case errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, appointment.ErrPatientNotFound),
		errors.Is(err, appointment.ErrNoPatientProfile):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrServiceRequired),
		errors.Is(err, appointment.ErrInvalidTime),
		errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
//
// Patients book for themselves; staff may book for any patient by
// including patient_id. A patient-supplied patient_id or status is
// ignored: ownership comes from the session and bookings start pending.
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID        string  `json:"patient_id"`
		ServiceRequested string  `json:"service_requested"`
		AppointmentDate  string  `json:"appointment_date"` // YYYY-MM-DD
		AppointmentTime  string  `json:"appointment_time"` // HH:MM:SS
		Notes            *string `json:"notes"`
		Status           *string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	date, err := time.Parse("2006-01-02", body.AppointmentDate)
	if err != nil {
		return badRequest(c, "appointment_date must be YYYY-MM-DD")
	}

	if id.IsStaff {
		if body.PatientID == "" {
			return badRequest(c, "patient_id is required")
		}
		patientID, err := uuid.Parse(body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}

		appt, err := h.svc.StaffCreate(c.Context(), appointment.StaffCreateRequest{
			PatientID:        patientID,
			ServiceRequested: body.ServiceRequested,
			AppointmentDate:  date,
			AppointmentTime:  body.AppointmentTime,
			Notes:            body.Notes,
			Status:           body.Status,
		})
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return created(c, appt)
	}

	appt, err := h.svc.Create(c.Context(), id.UserID, appointment.CreateRequest{
		ServiceRequested: body.ServiceRequested,
		AppointmentDate:  date,
		AppointmentTime:  body.AppointmentTime,
		Notes:            body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// GET /appointments
//
// Staff see everything; patients see only their own bookings. Anonymous
// traffic only reaches this handler when open appointment reads are
// enabled in config, and then gets the unscoped listing.
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.PatientID != "" {
		pid, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &pid
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	id, valid := middleware.IdentityFromFiber(c)
	if valid && !id.IsStaff {
		res, err := h.svc.ListOwned(c.Context(), id.UserID, req)
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return ok(c, res)
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, res)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	id, valid := middleware.IdentityFromFiber(c)
	if valid && !id.IsStaff {
		appt, err := h.svc.GetOwned(c.Context(), apptID, id.UserID)
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return ok(c, appt)
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		ServiceRequested *string `json:"service_requested"`
		AppointmentDate  *string `json:"appointment_date"`
		AppointmentTime  *string `json:"appointment_time"`
		Notes            *string `json:"notes"`
		Status           *string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := appointment.UpdateRequest{
		ServiceRequested: body.ServiceRequested,
		AppointmentTime:  body.AppointmentTime,
		Notes:            body.Notes,
		Status:           body.Status,
	}
	if body.AppointmentDate != nil {
		t, err := time.Parse("2006-01-02", *body.AppointmentDate)
		if err != nil {
			return badRequest(c, "appointment_date must be YYYY-MM-DD")
		}
		req.AppointmentDate = &t
	}

	appt, err := h.svc.Update(c.Context(), apptID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.UpdateStatus(c.Context(), apptID, body.Status)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
