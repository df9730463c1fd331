package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrNoPatientProfile    = errors.New("no patient profile linked to this account")
	ErrServiceRequired     = errors.New("service_requested is required")
	ErrInvalidTime         = errors.New("appointment_time must be HH:MM:SS")
	ErrInvalidStatus       = errors.New("status must be one of PENDING, CONFIRMED, CANCELLED, COMPLETED")
)
