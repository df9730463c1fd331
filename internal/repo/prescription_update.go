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
	"github.com/dentalperfections/dental_backend/internal/repo/predicate"
	"github.com/dentalperfections/dental_backend/internal/repo/prescription"
	"github.com/google/uuid"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdate) SetUpdatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHistoryID sets the "history_id" field.
func (_u *PrescriptionUpdate) SetHistoryID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetHistoryID(v)
	return _u
}

// SetNillableHistoryID sets the "history_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableHistoryID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetHistoryID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *PrescriptionUpdate) SetMedicineName(v string) *PrescriptionUpdate {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableMedicineName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdate) SetDosage(v string) *PrescriptionUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDosage(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *PrescriptionUpdate) ClearDosage() *PrescriptionUpdate {
	_u.mutation.ClearDosage()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdate) SetInstructions(v string) *PrescriptionUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableInstructions(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionUpdate) ClearInstructions() *PrescriptionUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetHistory sets the "history" edge to the DentalHistory entity.
func (_u *PrescriptionUpdate) SetHistory(v *DentalHistory) *PrescriptionUpdate {
	return _u.SetHistoryID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearHistory clears the "history" edge to the DentalHistory entity.
func (_u *PrescriptionUpdate) ClearHistory() *PrescriptionUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.MedicineName(); ok {
		if err := prescription.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.medicine_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Instructions(); ok {
		if err := prescription.InstructionsValidator(v); err != nil {
			return &ValidationError{Name: "instructions", err: fmt.Errorf(`repo: validator failed for field "Prescription.instructions": %w`, err)}
		}
	}
	if _u.mutation.HistoryCleared() && len(_u.mutation.HistoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.history"`)
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(prescription.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(prescription.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescription.FieldInstructions, field.TypeString)
	}
	if _u.mutation.HistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.HistoryTable,
			Columns: []string{prescription.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.HistoryTable,
			Columns: []string{prescription.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdateOne) SetUpdatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHistoryID sets the "history_id" field.
func (_u *PrescriptionUpdateOne) SetHistoryID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetHistoryID(v)
	return _u
}

// SetNillableHistoryID sets the "history_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableHistoryID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetHistoryID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *PrescriptionUpdateOne) SetMedicineName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableMedicineName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdateOne) SetDosage(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDosage(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *PrescriptionUpdateOne) ClearDosage() *PrescriptionUpdateOne {
	_u.mutation.ClearDosage()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdateOne) SetInstructions(v string) *PrescriptionUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableInstructions(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionUpdateOne) ClearInstructions() *PrescriptionUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetHistory sets the "history" edge to the DentalHistory entity.
func (_u *PrescriptionUpdateOne) SetHistory(v *DentalHistory) *PrescriptionUpdateOne {
	return _u.SetHistoryID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearHistory clears the "history" edge to the DentalHistory entity.
func (_u *PrescriptionUpdateOne) ClearHistory() *PrescriptionUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.MedicineName(); ok {
		if err := prescription.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.medicine_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Instructions(); ok {
		if err := prescription.InstructionsValidator(v); err != nil {
			return &ValidationError{Name: "instructions", err: fmt.Errorf(`repo: validator failed for field "Prescription.instructions": %w`, err)}
		}
	}
	if _u.mutation.HistoryCleared() && len(_u.mutation.HistoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.history"`)
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(prescription.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(prescription.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescription.FieldInstructions, field.TypeString)
	}
	if _u.mutation.HistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.HistoryTable,
			Columns: []string{prescription.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.HistoryTable,
			Columns: []string{prescription.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
