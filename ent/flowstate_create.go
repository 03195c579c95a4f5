// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ivelina/tendril/ent/flowstate"
)

// FlowStateCreate is the builder for creating a FlowState entity.
type FlowStateCreate struct {
	config
	mutation *FlowStateMutation
	hooks    []Hook
}

// SetSingletonID sets the "singleton_id" field.
func (_c *FlowStateCreate) SetSingletonID(v int) *FlowStateCreate {
	_c.mutation.SetSingletonID(v)
	return _c
}

// SetData sets the "data" field.
func (_c *FlowStateCreate) SetData(v map[string]interface{}) *FlowStateCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FlowStateCreate) SetUpdatedAt(v time.Time) *FlowStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the FlowStateMutation object of the builder.
func (_c *FlowStateCreate) Mutation() *FlowStateMutation {
	return _c.mutation
}

// Save creates the FlowState in the database.
func (_c *FlowStateCreate) Save(ctx context.Context) (*FlowState, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowStateCreate) SaveX(ctx context.Context) *FlowState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowStateCreate) check() error {
	if _, ok := _c.mutation.SingletonID(); !ok {
		return &ValidationError{Name: "singleton_id", err: errors.New(`ent: missing required field "FlowState.singleton_id"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "FlowState.data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FlowState.updated_at"`)}
	}
	return nil
}

func (_c *FlowStateCreate) sqlSave(ctx context.Context) (*FlowState, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlowStateCreate) createSpec() (*FlowState, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowstate.Table, sqlgraph.NewFieldSpec(flowstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SingletonID(); ok {
		_spec.SetField(flowstate.FieldSingletonID, field.TypeInt, value)
		_node.SingletonID = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(flowstate.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(flowstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FlowStateCreateBulk is the builder for creating many FlowState entities in bulk.
type FlowStateCreateBulk struct {
	config
	err      error
	builders []*FlowStateCreate
}

// Save creates the FlowState entities in the database.
func (_c *FlowStateCreateBulk) Save(ctx context.Context) ([]*FlowState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowStateMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *FlowStateCreateBulk) SaveX(ctx context.Context) []*FlowState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
