// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ivelina/tendril/ent/behaviorday"
)

// BehaviorDayCreate is the builder for creating a BehaviorDay entity.
type BehaviorDayCreate struct {
	config
	mutation *BehaviorDayMutation
	hooks    []Hook
}

// SetDate sets the "date" field.
func (_c *BehaviorDayCreate) SetDate(v string) *BehaviorDayCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetPresent sets the "present" field.
func (_c *BehaviorDayCreate) SetPresent(v bool) *BehaviorDayCreate {
	_c.mutation.SetPresent(v)
	return _c
}

// SetNillablePresent sets the "present" field if the given value is not nil.
func (_c *BehaviorDayCreate) SetNillablePresent(v *bool) *BehaviorDayCreate {
	if v != nil {
		_c.SetPresent(*v)
	}
	return _c
}

// SetFocused sets the "focused" field.
func (_c *BehaviorDayCreate) SetFocused(v bool) *BehaviorDayCreate {
	_c.mutation.SetFocused(v)
	return _c
}

// SetNillableFocused sets the "focused" field if the given value is not nil.
func (_c *BehaviorDayCreate) SetNillableFocused(v *bool) *BehaviorDayCreate {
	if v != nil {
		_c.SetFocused(*v)
	}
	return _c
}

// SetMetGoal sets the "met_goal" field.
func (_c *BehaviorDayCreate) SetMetGoal(v bool) *BehaviorDayCreate {
	_c.mutation.SetMetGoal(v)
	return _c
}

// SetNillableMetGoal sets the "met_goal" field if the given value is not nil.
func (_c *BehaviorDayCreate) SetNillableMetGoal(v *bool) *BehaviorDayCreate {
	if v != nil {
		_c.SetMetGoal(*v)
	}
	return _c
}

// SetOverGoal sets the "over_goal" field.
func (_c *BehaviorDayCreate) SetOverGoal(v bool) *BehaviorDayCreate {
	_c.mutation.SetOverGoal(v)
	return _c
}

// SetNillableOverGoal sets the "over_goal" field if the given value is not nil.
func (_c *BehaviorDayCreate) SetNillableOverGoal(v *bool) *BehaviorDayCreate {
	if v != nil {
		_c.SetOverGoal(*v)
	}
	return _c
}

// SetFocusMinutes sets the "focus_minutes" field.
func (_c *BehaviorDayCreate) SetFocusMinutes(v int) *BehaviorDayCreate {
	_c.mutation.SetFocusMinutes(v)
	return _c
}

// SetNillableFocusMinutes sets the "focus_minutes" field if the given value is not nil.
func (_c *BehaviorDayCreate) SetNillableFocusMinutes(v *int) *BehaviorDayCreate {
	if v != nil {
		_c.SetFocusMinutes(*v)
	}
	return _c
}

// SetStreakCounted sets the "streak_counted" field.
func (_c *BehaviorDayCreate) SetStreakCounted(v bool) *BehaviorDayCreate {
	_c.mutation.SetStreakCounted(v)
	return _c
}

// SetNillableStreakCounted sets the "streak_counted" field if the given value is not nil.
func (_c *BehaviorDayCreate) SetNillableStreakCounted(v *bool) *BehaviorDayCreate {
	if v != nil {
		_c.SetStreakCounted(*v)
	}
	return _c
}

// Mutation returns the BehaviorDayMutation object of the builder.
func (_c *BehaviorDayCreate) Mutation() *BehaviorDayMutation {
	return _c.mutation
}

// Save creates the BehaviorDay in the database.
func (_c *BehaviorDayCreate) Save(ctx context.Context) (*BehaviorDay, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BehaviorDayCreate) SaveX(ctx context.Context) *BehaviorDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehaviorDayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehaviorDayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BehaviorDayCreate) defaults() {
	if _, ok := _c.mutation.Present(); !ok {
		v := behaviorday.DefaultPresent
		_c.mutation.SetPresent(v)
	}
	if _, ok := _c.mutation.Focused(); !ok {
		v := behaviorday.DefaultFocused
		_c.mutation.SetFocused(v)
	}
	if _, ok := _c.mutation.MetGoal(); !ok {
		v := behaviorday.DefaultMetGoal
		_c.mutation.SetMetGoal(v)
	}
	if _, ok := _c.mutation.OverGoal(); !ok {
		v := behaviorday.DefaultOverGoal
		_c.mutation.SetOverGoal(v)
	}
	if _, ok := _c.mutation.FocusMinutes(); !ok {
		v := behaviorday.DefaultFocusMinutes
		_c.mutation.SetFocusMinutes(v)
	}
	if _, ok := _c.mutation.StreakCounted(); !ok {
		v := behaviorday.DefaultStreakCounted
		_c.mutation.SetStreakCounted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BehaviorDayCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "BehaviorDay.date"`)}
	}
	if _, ok := _c.mutation.Present(); !ok {
		return &ValidationError{Name: "present", err: errors.New(`ent: missing required field "BehaviorDay.present"`)}
	}
	if _, ok := _c.mutation.Focused(); !ok {
		return &ValidationError{Name: "focused", err: errors.New(`ent: missing required field "BehaviorDay.focused"`)}
	}
	if _, ok := _c.mutation.MetGoal(); !ok {
		return &ValidationError{Name: "met_goal", err: errors.New(`ent: missing required field "BehaviorDay.met_goal"`)}
	}
	if _, ok := _c.mutation.OverGoal(); !ok {
		return &ValidationError{Name: "over_goal", err: errors.New(`ent: missing required field "BehaviorDay.over_goal"`)}
	}
	if _, ok := _c.mutation.FocusMinutes(); !ok {
		return &ValidationError{Name: "focus_minutes", err: errors.New(`ent: missing required field "BehaviorDay.focus_minutes"`)}
	}
	if _, ok := _c.mutation.StreakCounted(); !ok {
		return &ValidationError{Name: "streak_counted", err: errors.New(`ent: missing required field "BehaviorDay.streak_counted"`)}
	}
	return nil
}

func (_c *BehaviorDayCreate) sqlSave(ctx context.Context) (*BehaviorDay, error) {
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

func (_c *BehaviorDayCreate) createSpec() (*BehaviorDay, *sqlgraph.CreateSpec) {
	var (
		_node = &BehaviorDay{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(behaviorday.Table, sqlgraph.NewFieldSpec(behaviorday.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(behaviorday.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Present(); ok {
		_spec.SetField(behaviorday.FieldPresent, field.TypeBool, value)
		_node.Present = value
	}
	if value, ok := _c.mutation.Focused(); ok {
		_spec.SetField(behaviorday.FieldFocused, field.TypeBool, value)
		_node.Focused = value
	}
	if value, ok := _c.mutation.MetGoal(); ok {
		_spec.SetField(behaviorday.FieldMetGoal, field.TypeBool, value)
		_node.MetGoal = value
	}
	if value, ok := _c.mutation.OverGoal(); ok {
		_spec.SetField(behaviorday.FieldOverGoal, field.TypeBool, value)
		_node.OverGoal = value
	}
	if value, ok := _c.mutation.FocusMinutes(); ok {
		_spec.SetField(behaviorday.FieldFocusMinutes, field.TypeInt, value)
		_node.FocusMinutes = value
	}
	if value, ok := _c.mutation.StreakCounted(); ok {
		_spec.SetField(behaviorday.FieldStreakCounted, field.TypeBool, value)
		_node.StreakCounted = value
	}
	return _node, _spec
}

// BehaviorDayCreateBulk is the builder for creating many BehaviorDay entities in bulk.
type BehaviorDayCreateBulk struct {
	config
	err      error
	builders []*BehaviorDayCreate
}

// Save creates the BehaviorDay entities in the database.
func (_c *BehaviorDayCreateBulk) Save(ctx context.Context) ([]*BehaviorDay, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BehaviorDay, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BehaviorDayMutation)
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
func (_c *BehaviorDayCreateBulk) SaveX(ctx context.Context) []*BehaviorDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehaviorDayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehaviorDayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
