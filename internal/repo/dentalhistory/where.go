// Code generated by ent, DO NOT EDIT.

package dentalhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dentalperfections/dental_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldPatientID, v))
}

// VisitDate applies equality check predicate on the "visit_date" field. It's identical to VisitDateEQ.
func VisitDate(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldVisitDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldNotes, v))
}

// TreatmentProvided applies equality check predicate on the "treatment_provided" field. It's identical to TreatmentProvidedEQ.
func TreatmentProvided(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldTreatmentProvided, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldPatientID, vs...))
}

// VisitDateEQ applies the EQ predicate on the "visit_date" field.
func VisitDateEQ(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldVisitDate, v))
}

// VisitDateNEQ applies the NEQ predicate on the "visit_date" field.
func VisitDateNEQ(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldVisitDate, v))
}

// VisitDateIn applies the In predicate on the "visit_date" field.
func VisitDateIn(vs ...time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldVisitDate, vs...))
}

// VisitDateNotIn applies the NotIn predicate on the "visit_date" field.
func VisitDateNotIn(vs ...time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldVisitDate, vs...))
}

// VisitDateGT applies the GT predicate on the "visit_date" field.
func VisitDateGT(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGT(FieldVisitDate, v))
}

// VisitDateGTE applies the GTE predicate on the "visit_date" field.
func VisitDateGTE(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGTE(FieldVisitDate, v))
}

// VisitDateLT applies the LT predicate on the "visit_date" field.
func VisitDateLT(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLT(FieldVisitDate, v))
}

// VisitDateLTE applies the LTE predicate on the "visit_date" field.
func VisitDateLTE(v time.Time) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLTE(FieldVisitDate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldContainsFold(FieldNotes, v))
}

// TreatmentProvidedEQ applies the EQ predicate on the "treatment_provided" field.
func TreatmentProvidedEQ(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEQ(FieldTreatmentProvided, v))
}

// TreatmentProvidedNEQ applies the NEQ predicate on the "treatment_provided" field.
func TreatmentProvidedNEQ(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNEQ(FieldTreatmentProvided, v))
}

// TreatmentProvidedIn applies the In predicate on the "treatment_provided" field.
func TreatmentProvidedIn(vs ...string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIn(FieldTreatmentProvided, vs...))
}

// TreatmentProvidedNotIn applies the NotIn predicate on the "treatment_provided" field.
func TreatmentProvidedNotIn(vs ...string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotIn(FieldTreatmentProvided, vs...))
}

// TreatmentProvidedGT applies the GT predicate on the "treatment_provided" field.
func TreatmentProvidedGT(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGT(FieldTreatmentProvided, v))
}

// TreatmentProvidedGTE applies the GTE predicate on the "treatment_provided" field.
func TreatmentProvidedGTE(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldGTE(FieldTreatmentProvided, v))
}

// TreatmentProvidedLT applies the LT predicate on the "treatment_provided" field.
func TreatmentProvidedLT(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLT(FieldTreatmentProvided, v))
}

// TreatmentProvidedLTE applies the LTE predicate on the "treatment_provided" field.
func TreatmentProvidedLTE(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldLTE(FieldTreatmentProvided, v))
}

// TreatmentProvidedContains applies the Contains predicate on the "treatment_provided" field.
func TreatmentProvidedContains(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldContains(FieldTreatmentProvided, v))
}

// TreatmentProvidedHasPrefix applies the HasPrefix predicate on the "treatment_provided" field.
func TreatmentProvidedHasPrefix(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldHasPrefix(FieldTreatmentProvided, v))
}

// TreatmentProvidedHasSuffix applies the HasSuffix predicate on the "treatment_provided" field.
func TreatmentProvidedHasSuffix(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldHasSuffix(FieldTreatmentProvided, v))
}

// TreatmentProvidedIsNil applies the IsNil predicate on the "treatment_provided" field.
func TreatmentProvidedIsNil() predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldIsNull(FieldTreatmentProvided))
}

// TreatmentProvidedNotNil applies the NotNil predicate on the "treatment_provided" field.
func TreatmentProvidedNotNil() predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldNotNull(FieldTreatmentProvided))
}

// TreatmentProvidedEqualFold applies the EqualFold predicate on the "treatment_provided" field.
func TreatmentProvidedEqualFold(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldEqualFold(FieldTreatmentProvided, v))
}

// TreatmentProvidedContainsFold applies the ContainsFold predicate on the "treatment_provided" field.
func TreatmentProvidedContainsFold(v string) predicate.DentalHistory {
	return predicate.DentalHistory(sql.FieldContainsFold(FieldTreatmentProvided, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.DentalHistory {
	return predicate.DentalHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.DentalHistory {
	return predicate.DentalHistory(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrescriptions applies the HasEdge predicate on the "prescriptions" edge.
func HasPrescriptions() predicate.DentalHistory {
	return predicate.DentalHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionsWith applies the HasEdge predicate on the "prescriptions" edge with a given conditions (other predicates).
func HasPrescriptionsWith(preds ...predicate.Prescription) predicate.DentalHistory {
	return predicate.DentalHistory(func(s *sql.Selector) {
		step := newPrescriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DentalHistory) predicate.DentalHistory {
	return predicate.DentalHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DentalHistory) predicate.DentalHistory {
	return predicate.DentalHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DentalHistory) predicate.DentalHistory {
	return predicate.DentalHistory(sql.NotPredicates(p))
}
