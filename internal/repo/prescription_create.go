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
	"github.com/dentalperfections/dental_backend/internal/repo/prescription"
	"github.com/google/uuid"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PrescriptionCreate) SetUpdatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableUpdatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHistoryID sets the "history_id" field.
func (_c *PrescriptionCreate) SetHistoryID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetHistoryID(v)
	return _c
}

// SetMedicineName sets the "medicine_name" field.
func (_c *PrescriptionCreate) SetMedicineName(v string) *PrescriptionCreate {
	_c.mutation.SetMedicineName(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *PrescriptionCreate) SetDosage(v string) *PrescriptionCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableDosage(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetDosage(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PrescriptionCreate) SetInstructions(v string) *PrescriptionCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableInstructions(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetHistory sets the "history" edge to the DentalHistory entity.
func (_c *PrescriptionCreate) SetHistory(v *DentalHistory) *PrescriptionCreate {
	return _c.SetHistoryID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prescription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Prescription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Prescription.updated_at"`)}
	}
	if _, ok := _c.mutation.HistoryID(); !ok {
		return &ValidationError{Name: "history_id", err: errors.New(`repo: missing required field "Prescription.history_id"`)}
	}
	if _, ok := _c.mutation.MedicineName(); !ok {
		return &ValidationError{Name: "medicine_name", err: errors.New(`repo: missing required field "Prescription.medicine_name"`)}
	}
	if v, ok := _c.mutation.MedicineName(); ok {
		if err := prescription.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.medicine_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Instructions(); ok {
		if err := prescription.InstructionsValidator(v); err != nil {
			return &ValidationError{Name: "instructions", err: fmt.Errorf(`repo: validator failed for field "Prescription.instructions": %w`, err)}
		}
	}
	if len(_c.mutation.HistoryIDs()) == 0 {
		return &ValidationError{Name: "history", err: errors.New(`repo: missing required edge "Prescription.history"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
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

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MedicineName(); ok {
		_spec.SetField(prescription.FieldMedicineName, field.TypeString, value)
		_node.MedicineName = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
		_node.Instructions = value
	}
	if nodes := _c.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_node.HistoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
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
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
