// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ivelina/tendril/ent/flowstate"
	"github.com/ivelina/tendril/ent/predicate"
)

// FlowStateUpdate is the builder for updating FlowState entities.
type FlowStateUpdate struct {
	config
	hooks    []Hook
	mutation *FlowStateMutation
}

// Where appends a list predicates to the FlowStateUpdate builder.
func (_u *FlowStateUpdate) Where(ps ...predicate.FlowState) *FlowStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSingletonID sets the "singleton_id" field.
func (_u *FlowStateUpdate) SetSingletonID(v int) *FlowStateUpdate {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *FlowStateUpdate) SetNillableSingletonID(v *int) *FlowStateUpdate {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *FlowStateUpdate) AddSingletonID(v int) *FlowStateUpdate {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetData sets the "data" field.
func (_u *FlowStateUpdate) SetData(v map[string]interface{}) *FlowStateUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlowStateUpdate) SetUpdatedAt(v time.Time) *FlowStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *FlowStateUpdate) SetNillableUpdatedAt(v *time.Time) *FlowStateUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the FlowStateMutation object of the builder.
func (_u *FlowStateUpdate) Mutation() *FlowStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FlowStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(flowstate.Table, flowstate.Columns, sqlgraph.NewFieldSpec(flowstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SingletonID(); ok {
		_spec.SetField(flowstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(flowstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(flowstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flowstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowStateUpdateOne is the builder for updating a single FlowState entity.
type FlowStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowStateMutation
}

// SetSingletonID sets the "singleton_id" field.
func (_u *FlowStateUpdateOne) SetSingletonID(v int) *FlowStateUpdateOne {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *FlowStateUpdateOne) SetNillableSingletonID(v *int) *FlowStateUpdateOne {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *FlowStateUpdateOne) AddSingletonID(v int) *FlowStateUpdateOne {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetData sets the "data" field.
func (_u *FlowStateUpdateOne) SetData(v map[string]interface{}) *FlowStateUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlowStateUpdateOne) SetUpdatedAt(v time.Time) *FlowStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *FlowStateUpdateOne) SetNillableUpdatedAt(v *time.Time) *FlowStateUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the FlowStateMutation object of the builder.
func (_u *FlowStateUpdateOne) Mutation() *FlowStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlowStateUpdate builder.
func (_u *FlowStateUpdateOne) Where(ps ...predicate.FlowState) *FlowStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowStateUpdateOne) Select(field string, fields ...string) *FlowStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowState entity.
func (_u *FlowStateUpdateOne) Save(ctx context.Context) (*FlowState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowStateUpdateOne) SaveX(ctx context.Context) *FlowState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FlowStateUpdateOne) sqlSave(ctx context.Context) (_node *FlowState, err error) {
	_spec := sqlgraph.NewUpdateSpec(flowstate.Table, flowstate.Columns, sqlgraph.NewFieldSpec(flowstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlowState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowstate.FieldID)
		for _, f := range fields {
			if !flowstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flowstate.FieldID {
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
	if value, ok := _u.mutation.SingletonID(); ok {
		_spec.SetField(flowstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(flowstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(flowstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flowstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FlowState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
