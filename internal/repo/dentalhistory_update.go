// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dentalperfections/dental_backend/internal/repo/dentalhistory"
	"github.com/dentalperfections/dental_backend/internal/repo/patient"
	"github.com/dentalperfections/dental_backend/internal/repo/predicate"
	"github.com/dentalperfections/dental_backend/internal/repo/prescription"
	"github.com/google/uuid"
)

// DentalHistoryUpdate is the builder for updating DentalHistory entities.
type DentalHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *DentalHistoryMutation
}

// Where appends a list predicates to the DentalHistoryUpdate builder.
func (_u *DentalHistoryUpdate) Where(ps ...predicate.DentalHistory) *DentalHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DentalHistoryUpdate) SetUpdatedAt(v time.Time) *DentalHistoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DentalHistoryUpdate) SetPatientID(v uuid.UUID) *DentalHistoryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DentalHistoryUpdate) SetNillablePatientID(v *uuid.UUID) *DentalHistoryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *DentalHistoryUpdate) SetVisitDate(v time.Time) *DentalHistoryUpdate {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *DentalHistoryUpdate) SetNillableVisitDate(v *time.Time) *DentalHistoryUpdate {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DentalHistoryUpdate) SetNotes(v string) *DentalHistoryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DentalHistoryUpdate) SetNillableNotes(v *string) *DentalHistoryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DentalHistoryUpdate) ClearNotes() *DentalHistoryUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetTreatmentProvided sets the "treatment_provided" field.
func (_u *DentalHistoryUpdate) SetTreatmentProvided(v string) *DentalHistoryUpdate {
	_u.mutation.SetTreatmentProvided(v)
	return _u
}

// SetNillableTreatmentProvided sets the "treatment_provided" field if the given value is not nil.
func (_u *DentalHistoryUpdate) SetNillableTreatmentProvided(v *string) *DentalHistoryUpdate {
	if v != nil {
		_u.SetTreatmentProvided(*v)
	}
	return _u
}

// ClearTreatmentProvided clears the value of the "treatment_provided" field.
func (_u *DentalHistoryUpdate) ClearTreatmentProvided() *DentalHistoryUpdate {
	_u.mutation.ClearTreatmentProvided()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DentalHistoryUpdate) SetPatient(v *Patient) *DentalHistoryUpdate {
	return _u.SetPatientID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *DentalHistoryUpdate) AddPrescriptionIDs(ids ...uuid.UUID) *DentalHistoryUpdate {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *DentalHistoryUpdate) AddPrescriptions(v ...*Prescription) *DentalHistoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// Mutation returns the DentalHistoryMutation object of the builder.
func (_u *DentalHistoryUpdate) Mutation() *DentalHistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DentalHistoryUpdate) ClearPatient() *DentalHistoryUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *DentalHistoryUpdate) ClearPrescriptions() *DentalHistoryUpdate {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *DentalHistoryUpdate) RemovePrescriptionIDs(ids ...uuid.UUID) *DentalHistoryUpdate {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *DentalHistoryUpdate) RemovePrescriptions(v ...*Prescription) *DentalHistoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DentalHistoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DentalHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DentalHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DentalHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DentalHistoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dentalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DentalHistoryUpdate) check() error {
	if v, ok := _u.mutation.TreatmentProvided(); ok {
		if err := dentalhistory.TreatmentProvidedValidator(v); err != nil {
			return &ValidationError{Name: "treatment_provided", err: fmt.Errorf(`repo: validator failed for field "DentalHistory.treatment_provided": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DentalHistory.patient"`)
	}
	return nil
}

func (_u *DentalHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dentalhistory.Table, dentalhistory.Columns, sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dentalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(dentalhistory.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(dentalhistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(dentalhistory.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TreatmentProvided(); ok {
		_spec.SetField(dentalhistory.FieldTreatmentProvided, field.TypeString, value)
	}
	if _u.mutation.TreatmentProvidedCleared() {
		_spec.ClearField(dentalhistory.FieldTreatmentProvided, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dentalhistory.PatientTable,
			Columns: []string{dentalhistory.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dentalhistory.PatientTable,
			Columns: []string{dentalhistory.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dentalhistory.PrescriptionsTable,
			Columns: []string{dentalhistory.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dentalhistory.PrescriptionsTable,
			Columns: []string{dentalhistory.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dentalhistory.PrescriptionsTable,
			Columns: []string{dentalhistory.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dentalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DentalHistoryUpdateOne is the builder for updating a single DentalHistory entity.
type DentalHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DentalHistoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DentalHistoryUpdateOne) SetUpdatedAt(v time.Time) *DentalHistoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DentalHistoryUpdateOne) SetPatientID(v uuid.UUID) *DentalHistoryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DentalHistoryUpdateOne) SetNillablePatientID(v *uuid.UUID) *DentalHistoryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *DentalHistoryUpdateOne) SetVisitDate(v time.Time) *DentalHistoryUpdateOne {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *DentalHistoryUpdateOne) SetNillableVisitDate(v *time.Time) *DentalHistoryUpdateOne {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DentalHistoryUpdateOne) SetNotes(v string) *DentalHistoryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DentalHistoryUpdateOne) SetNillableNotes(v *string) *DentalHistoryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DentalHistoryUpdateOne) ClearNotes() *DentalHistoryUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetTreatmentProvided sets the "treatment_provided" field.
func (_u *DentalHistoryUpdateOne) SetTreatmentProvided(v string) *DentalHistoryUpdateOne {
	_u.mutation.SetTreatmentProvided(v)
	return _u
}

// SetNillableTreatmentProvided sets the "treatment_provided" field if the given value is not nil.
func (_u *DentalHistoryUpdateOne) SetNillableTreatmentProvided(v *string) *DentalHistoryUpdateOne {
	if v != nil {
		_u.SetTreatmentProvided(*v)
	}
	return _u
}

// ClearTreatmentProvided clears the value of the "treatment_provided" field.
func (_u *DentalHistoryUpdateOne) ClearTreatmentProvided() *DentalHistoryUpdateOne {
	_u.mutation.ClearTreatmentProvided()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DentalHistoryUpdateOne) SetPatient(v *Patient) *DentalHistoryUpdateOne {
	return _u.SetPatientID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *DentalHistoryUpdateOne) AddPrescriptionIDs(ids ...uuid.UUID) *DentalHistoryUpdateOne {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *DentalHistoryUpdateOne) AddPrescriptions(v ...*Prescription) *DentalHistoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// Mutation returns the DentalHistoryMutation object of the builder.
func (_u *DentalHistoryUpdateOne) Mutation() *DentalHistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DentalHistoryUpdateOne) ClearPatient() *DentalHistoryUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *DentalHistoryUpdateOne) ClearPrescriptions() *DentalHistoryUpdateOne {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *DentalHistoryUpdateOne) RemovePrescriptionIDs(ids ...uuid.UUID) *DentalHistoryUpdateOne {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *DentalHistoryUpdateOne) RemovePrescriptions(v ...*Prescription) *DentalHistoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// Where appends a list predicates to the DentalHistoryUpdate builder.
func (_u *DentalHistoryUpdateOne) Where(ps ...predicate.DentalHistory) *DentalHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DentalHistoryUpdateOne) Select(field string, fields ...string) *DentalHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DentalHistory entity.
func (_u *DentalHistoryUpdateOne) Save(ctx context.Context) (*DentalHistory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DentalHistoryUpdateOne) SaveX(ctx context.Context) *DentalHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DentalHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DentalHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DentalHistoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dentalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DentalHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.TreatmentProvided(); ok {
		if err := dentalhistory.TreatmentProvidedValidator(v); err != nil {
			return &ValidationError{Name: "treatment_provided", err: fmt.Errorf(`repo: validator failed for field "DentalHistory.treatment_provided": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DentalHistory.patient"`)
	}
	return nil
}

func (_u *DentalHistoryUpdateOne) sqlSave(ctx context.Context) (_node *DentalHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dentalhistory.Table, dentalhistory.Columns, sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DentalHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dentalhistory.FieldID)
		for _, f := range fields {
			if !dentalhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dentalhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dentalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(dentalhistory.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(dentalhistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(dentalhistory.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TreatmentProvided(); ok {
		_spec.SetField(dentalhistory.FieldTreatmentProvided, field.TypeString, value)
	}
	if _u.mutation.TreatmentProvidedCleared() {
		_spec.ClearField(dentalhistory.FieldTreatmentProvided, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dentalhistory.PatientTable,
			Columns: []string{dentalhistory.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dentalhistory.PatientTable,
			Columns: []string{dentalhistory.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dentalhistory.PrescriptionsTable,
			Columns: []string{dentalhistory.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dentalhistory.PrescriptionsTable,
			Columns: []string{dentalhistory.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dentalhistory.PrescriptionsTable,
			Columns: []string{dentalhistory.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DentalHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dentalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
