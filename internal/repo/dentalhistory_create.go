// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dentalperfections/dental_backend/internal/repo/dentalhistory"
	"github.com/dentalperfections/dental_backend/internal/repo/patient"
	"github.com/dentalperfections/dental_backend/internal/repo/prescription"
	"github.com/google/uuid"
)

// DentalHistoryCreate is the builder for creating a DentalHistory entity.
type DentalHistoryCreate struct {
	config
	mutation *DentalHistoryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DentalHistoryCreate) SetCreatedAt(v time.Time) *DentalHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DentalHistoryCreate) SetNillableCreatedAt(v *time.Time) *DentalHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DentalHistoryCreate) SetUpdatedAt(v time.Time) *DentalHistoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DentalHistoryCreate) SetNillableUpdatedAt(v *time.Time) *DentalHistoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *DentalHistoryCreate) SetPatientID(v uuid.UUID) *DentalHistoryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVisitDate sets the "visit_date" field.
func (_c *DentalHistoryCreate) SetVisitDate(v time.Time) *DentalHistoryCreate {
	_c.mutation.SetVisitDate(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *DentalHistoryCreate) SetNotes(v string) *DentalHistoryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *DentalHistoryCreate) SetNillableNotes(v *string) *DentalHistoryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetTreatmentProvided sets the "treatment_provided" field.
func (_c *DentalHistoryCreate) SetTreatmentProvided(v string) *DentalHistoryCreate {
	_c.mutation.SetTreatmentProvided(v)
	return _c
}

// SetNillableTreatmentProvided sets the "treatment_provided" field if the given value is not nil.
func (_c *DentalHistoryCreate) SetNillableTreatmentProvided(v *string) *DentalHistoryCreate {
	if v != nil {
		_c.SetTreatmentProvided(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DentalHistoryCreate) SetID(v uuid.UUID) *DentalHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DentalHistoryCreate) SetNillableID(v *uuid.UUID) *DentalHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *DentalHistoryCreate) SetPatient(v *Patient) *DentalHistoryCreate {
	return _c.SetPatientID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *DentalHistoryCreate) AddPrescriptionIDs(ids ...uuid.UUID) *DentalHistoryCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *DentalHistoryCreate) AddPrescriptions(v ...*Prescription) *DentalHistoryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// Mutation returns the DentalHistoryMutation object of the builder.
func (_c *DentalHistoryCreate) Mutation() *DentalHistoryMutation {
	return _c.mutation
}

// Save creates the DentalHistory in the database.
func (_c *DentalHistoryCreate) Save(ctx context.Context) (*DentalHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DentalHistoryCreate) SaveX(ctx context.Context) *DentalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DentalHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DentalHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DentalHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dentalhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dentalhistory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dentalhistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DentalHistoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DentalHistory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DentalHistory.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "DentalHistory.patient_id"`)}
	}
	if _, ok := _c.mutation.VisitDate(); !ok {
		return &ValidationError{Name: "visit_date", err: errors.New(`repo: missing required field "DentalHistory.visit_date"`)}
	}
	if v, ok := _c.mutation.TreatmentProvided(); ok {
		if err := dentalhistory.TreatmentProvidedValidator(v); err != nil {
			return &ValidationError{Name: "treatment_provided", err: fmt.Errorf(`repo: validator failed for field "DentalHistory.treatment_provided": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "DentalHistory.patient"`)}
	}
	return nil
}

func (_c *DentalHistoryCreate) sqlSave(ctx context.Context) (*DentalHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DentalHistoryCreate) createSpec() (*DentalHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &DentalHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dentalhistory.Table, sqlgraph.NewFieldSpec(dentalhistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dentalhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dentalhistory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.VisitDate(); ok {
		_spec.SetField(dentalhistory.FieldVisitDate, field.TypeTime, value)
		_node.VisitDate = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(dentalhistory.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.TreatmentProvided(); ok {
		_spec.SetField(dentalhistory.FieldTreatmentProvided, field.TypeString, value)
		_node.TreatmentProvided = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DentalHistoryCreateBulk is the builder for creating many DentalHistory entities in bulk.
type DentalHistoryCreateBulk struct {
	config
	err      error
	builders []*DentalHistoryCreate
}

// Save creates the DentalHistory entities in the database.
func (_c *DentalHistoryCreateBulk) Save(ctx context.Context) ([]*DentalHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DentalHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DentalHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DentalHistoryCreateBulk) SaveX(ctx context.Context) []*DentalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DentalHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DentalHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
