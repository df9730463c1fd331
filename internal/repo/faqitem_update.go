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
	"github.com/dentalperfections/dental_backend/internal/repo/faqcategory"
	"github.com/dentalperfections/dental_backend/internal/repo/faqitem"
	"github.com/dentalperfections/dental_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// FaqItemUpdate is the builder for updating FaqItem entities.
type FaqItemUpdate struct {
	config
	hooks    []Hook
	mutation *FaqItemMutation
}

// Where appends a list predicates to the FaqItemUpdate builder.
func (_u *FaqItemUpdate) Where(ps ...predicate.FaqItem) *FaqItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FaqItemUpdate) SetUpdatedAt(v time.Time) *FaqItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *FaqItemUpdate) SetCategoryID(v uuid.UUID) *FaqItemUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *FaqItemUpdate) SetNillableCategoryID(v *uuid.UUID) *FaqItemUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *FaqItemUpdate) SetQuestion(v string) *FaqItemUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *FaqItemUpdate) SetNillableQuestion(v *string) *FaqItemUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *FaqItemUpdate) SetAnswer(v string) *FaqItemUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *FaqItemUpdate) SetNillableAnswer(v *string) *FaqItemUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *FaqItemUpdate) SetDisplayOrder(v int) *FaqItemUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *FaqItemUpdate) SetNillableDisplayOrder(v *int) *FaqItemUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *FaqItemUpdate) AddDisplayOrder(v int) *FaqItemUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCategory sets the "category" edge to the FaqCategory entity.
func (_u *FaqItemUpdate) SetCategory(v *FaqCategory) *FaqItemUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the FaqItemMutation object of the builder.
func (_u *FaqItemUpdate) Mutation() *FaqItemMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the FaqCategory entity.
func (_u *FaqItemUpdate) ClearCategory() *FaqItemUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FaqItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FaqItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FaqItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FaqItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FaqItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := faqitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FaqItemUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := faqitem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`repo: validator failed for field "FaqItem.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := faqitem.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`repo: validator failed for field "FaqItem.answer": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FaqItem.category"`)
	}
	return nil
}

func (_u *FaqItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faqitem.Table, faqitem.Columns, sqlgraph.NewFieldSpec(faqitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(faqitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(faqitem.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(faqitem.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(faqitem.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(faqitem.FieldDisplayOrder, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faqitem.CategoryTable,
			Columns: []string{faqitem.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faqcategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faqitem.CategoryTable,
			Columns: []string{faqitem.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faqcategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faqitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FaqItemUpdateOne is the builder for updating a single FaqItem entity.
type FaqItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FaqItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FaqItemUpdateOne) SetUpdatedAt(v time.Time) *FaqItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *FaqItemUpdateOne) SetCategoryID(v uuid.UUID) *FaqItemUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *FaqItemUpdateOne) SetNillableCategoryID(v *uuid.UUID) *FaqItemUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *FaqItemUpdateOne) SetQuestion(v string) *FaqItemUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *FaqItemUpdateOne) SetNillableQuestion(v *string) *FaqItemUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *FaqItemUpdateOne) SetAnswer(v string) *FaqItemUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *FaqItemUpdateOne) SetNillableAnswer(v *string) *FaqItemUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *FaqItemUpdateOne) SetDisplayOrder(v int) *FaqItemUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *FaqItemUpdateOne) SetNillableDisplayOrder(v *int) *FaqItemUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *FaqItemUpdateOne) AddDisplayOrder(v int) *FaqItemUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCategory sets the "category" edge to the FaqCategory entity.
func (_u *FaqItemUpdateOne) SetCategory(v *FaqCategory) *FaqItemUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the FaqItemMutation object of the builder.
func (_u *FaqItemUpdateOne) Mutation() *FaqItemMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the FaqCategory entity.
func (_u *FaqItemUpdateOne) ClearCategory() *FaqItemUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the FaqItemUpdate builder.
func (_u *FaqItemUpdateOne) Where(ps ...predicate.FaqItem) *FaqItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FaqItemUpdateOne) Select(field string, fields ...string) *FaqItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FaqItem entity.
func (_u *FaqItemUpdateOne) Save(ctx context.Context) (*FaqItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FaqItemUpdateOne) SaveX(ctx context.Context) *FaqItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FaqItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FaqItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FaqItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := faqitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FaqItemUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := faqitem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`repo: validator failed for field "FaqItem.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := faqitem.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`repo: validator failed for field "FaqItem.answer": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FaqItem.category"`)
	}
	return nil
}

func (_u *FaqItemUpdateOne) sqlSave(ctx context.Context) (_node *FaqItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faqitem.Table, faqitem.Columns, sqlgraph.NewFieldSpec(faqitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FaqItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, faqitem.FieldID)
		for _, f := range fields {
			if !faqitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != faqitem.FieldID {
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
		_spec.SetField(faqitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(faqitem.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(faqitem.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(faqitem.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(faqitem.FieldDisplayOrder, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faqitem.CategoryTable,
			Columns: []string{faqitem.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faqcategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faqitem.CategoryTable,
			Columns: []string{faqitem.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faqcategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FaqItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faqitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
