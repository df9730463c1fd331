// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dentalperfections/dental_backend/internal/repo/dentalhistory"
	"github.com/dentalperfections/dental_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// DentalHistory is the model entity for the DentalHistory schema.
type DentalHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// VisitDate holds the value of the "visit_date" field.
	VisitDate time.Time `json:"visit_date,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// TreatmentProvided holds the value of the "treatment_provided" field.
	TreatmentProvided string `json:"treatment_provided,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DentalHistoryQuery when eager-loading is set.
	Edges        DentalHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DentalHistoryEdges holds the relations/edges for other nodes in the graph.
type DentalHistoryEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Prescriptions holds the value of the prescriptions edge.
	Prescriptions []*Prescription `json:"prescriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DentalHistoryEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// PrescriptionsOrErr returns the Prescriptions value or an error if the edge
// was not loaded in eager-loading.
func (e DentalHistoryEdges) PrescriptionsOrErr() ([]*Prescription, error) {
	if e.loadedTypes[1] {
		return e.Prescriptions, nil
	}
	return nil, &NotLoadedError{edge: "prescriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DentalHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dentalhistory.FieldNotes, dentalhistory.FieldTreatmentProvided:
			values[i] = new(sql.NullString)
		case dentalhistory.FieldCreatedAt, dentalhistory.FieldUpdatedAt, dentalhistory.FieldVisitDate:
			values[i] = new(sql.NullTime)
		case dentalhistory.FieldID, dentalhistory.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DentalHistory fields.
func (_m *DentalHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dentalhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dentalhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dentalhistory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case dentalhistory.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case dentalhistory.FieldVisitDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visit_date", values[i])
			} else if value.Valid {
				_m.VisitDate = value.Time
			}
		case dentalhistory.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case dentalhistory.FieldTreatmentProvided:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_provided", values[i])
			} else if value.Valid {
				_m.TreatmentProvided = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DentalHistory.
// This includes values selected through modifiers, order, etc.
func (_m *DentalHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the DentalHistory entity.
func (_m *DentalHistory) QueryPatient() *PatientQuery {
	return NewDentalHistoryClient(_m.config).QueryPatient(_m)
}

// QueryPrescriptions queries the "prescriptions" edge of the DentalHistory entity.
func (_m *DentalHistory) QueryPrescriptions() *PrescriptionQuery {
	return NewDentalHistoryClient(_m.config).QueryPrescriptions(_m)
}

// Update returns a builder for updating this DentalHistory.
// Note that you need to call DentalHistory.Unwrap() before calling this method if this DentalHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DentalHistory) Update() *DentalHistoryUpdateOne {
	return NewDentalHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DentalHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DentalHistory) Unwrap() *DentalHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DentalHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DentalHistory) String() string {
	var builder strings.Builder
	builder.WriteString("DentalHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("visit_date=")
	builder.WriteString(_m.VisitDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("treatment_provided=")
	builder.WriteString(_m.TreatmentProvided)
	builder.WriteByte(')')
	return builder.String()
}

// DentalHistories is a parsable slice of DentalHistory.
type DentalHistories []*DentalHistory
