package patient

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrProfileNotFound      = errors.New("no patient profile linked to this account")
	ErrHistoryNotFound      = errors.New("dental history entry not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrTreatmentRequired    = errors.New("treatment_provided is required")
	ErrMedicineRequired     = errors.New("medicine_name is required")
	ErrInvalidPhone         = errors.New("invalid phone number")
)
