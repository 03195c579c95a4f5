// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ivelina/tendril/ent/behaviorday"
	"github.com/ivelina/tendril/ent/predicate"
)

// BehaviorDayUpdate is the builder for updating BehaviorDay entities.
type BehaviorDayUpdate struct {
	config
	hooks    []Hook
	mutation *BehaviorDayMutation
}

// Where appends a list predicates to the BehaviorDayUpdate builder.
func (_u *BehaviorDayUpdate) Where(ps ...predicate.BehaviorDay) *BehaviorDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *BehaviorDayUpdate) SetDate(v string) *BehaviorDayUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillableDate(v *string) *BehaviorDayUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPresent sets the "present" field.
func (_u *BehaviorDayUpdate) SetPresent(v bool) *BehaviorDayUpdate {
	_u.mutation.SetPresent(v)
	return _u
}

// SetNillablePresent sets the "present" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillablePresent(v *bool) *BehaviorDayUpdate {
	if v != nil {
		_u.SetPresent(*v)
	}
	return _u
}

// SetFocused sets the "focused" field.
func (_u *BehaviorDayUpdate) SetFocused(v bool) *BehaviorDayUpdate {
	_u.mutation.SetFocused(v)
	return _u
}

// SetNillableFocused sets the "focused" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillableFocused(v *bool) *BehaviorDayUpdate {
	if v != nil {
		_u.SetFocused(*v)
	}
	return _u
}

// SetMetGoal sets the "met_goal" field.
func (_u *BehaviorDayUpdate) SetMetGoal(v bool) *BehaviorDayUpdate {
	_u.mutation.SetMetGoal(v)
	return _u
}

// SetNillableMetGoal sets the "met_goal" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillableMetGoal(v *bool) *BehaviorDayUpdate {
	if v != nil {
		_u.SetMetGoal(*v)
	}
	return _u
}

// SetOverGoal sets the "over_goal" field.
func (_u *BehaviorDayUpdate) SetOverGoal(v bool) *BehaviorDayUpdate {
	_u.mutation.SetOverGoal(v)
	return _u
}

// SetNillableOverGoal sets the "over_goal" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillableOverGoal(v *bool) *BehaviorDayUpdate {
	if v != nil {
		_u.SetOverGoal(*v)
	}
	return _u
}

// SetFocusMinutes sets the "focus_minutes" field.
func (_u *BehaviorDayUpdate) SetFocusMinutes(v int) *BehaviorDayUpdate {
	_u.mutation.ResetFocusMinutes()
	_u.mutation.SetFocusMinutes(v)
	return _u
}

// SetNillableFocusMinutes sets the "focus_minutes" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillableFocusMinutes(v *int) *BehaviorDayUpdate {
	if v != nil {
		_u.SetFocusMinutes(*v)
	}
	return _u
}

// AddFocusMinutes adds value to the "focus_minutes" field.
func (_u *BehaviorDayUpdate) AddFocusMinutes(v int) *BehaviorDayUpdate {
	_u.mutation.AddFocusMinutes(v)
	return _u
}

// SetStreakCounted sets the "streak_counted" field.
func (_u *BehaviorDayUpdate) SetStreakCounted(v bool) *BehaviorDayUpdate {
	_u.mutation.SetStreakCounted(v)
	return _u
}

// SetNillableStreakCounted sets the "streak_counted" field if the given value is not nil.
func (_u *BehaviorDayUpdate) SetNillableStreakCounted(v *bool) *BehaviorDayUpdate {
	if v != nil {
		_u.SetStreakCounted(*v)
	}
	return _u
}

// Mutation returns the BehaviorDayMutation object of the builder.
func (_u *BehaviorDayUpdate) Mutation() *BehaviorDayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BehaviorDayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehaviorDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BehaviorDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehaviorDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BehaviorDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(behaviorday.Table, behaviorday.Columns, sqlgraph.NewFieldSpec(behaviorday.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(behaviorday.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Present(); ok {
		_spec.SetField(behaviorday.FieldPresent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Focused(); ok {
		_spec.SetField(behaviorday.FieldFocused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetGoal(); ok {
		_spec.SetField(behaviorday.FieldMetGoal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OverGoal(); ok {
		_spec.SetField(behaviorday.FieldOverGoal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FocusMinutes(); ok {
		_spec.SetField(behaviorday.FieldFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocusMinutes(); ok {
		_spec.AddField(behaviorday.FieldFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCounted(); ok {
		_spec.SetField(behaviorday.FieldStreakCounted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behaviorday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BehaviorDayUpdateOne is the builder for updating a single BehaviorDay entity.
type BehaviorDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BehaviorDayMutation
}

// SetDate sets the "date" field.
func (_u *BehaviorDayUpdateOne) SetDate(v string) *BehaviorDayUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillableDate(v *string) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPresent sets the "present" field.
func (_u *BehaviorDayUpdateOne) SetPresent(v bool) *BehaviorDayUpdateOne {
	_u.mutation.SetPresent(v)
	return _u
}

// SetNillablePresent sets the "present" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillablePresent(v *bool) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetPresent(*v)
	}
	return _u
}

// SetFocused sets the "focused" field.
func (_u *BehaviorDayUpdateOne) SetFocused(v bool) *BehaviorDayUpdateOne {
	_u.mutation.SetFocused(v)
	return _u
}

// SetNillableFocused sets the "focused" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillableFocused(v *bool) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetFocused(*v)
	}
	return _u
}

// SetMetGoal sets the "met_goal" field.
func (_u *BehaviorDayUpdateOne) SetMetGoal(v bool) *BehaviorDayUpdateOne {
	_u.mutation.SetMetGoal(v)
	return _u
}

// SetNillableMetGoal sets the "met_goal" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillableMetGoal(v *bool) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetMetGoal(*v)
	}
	return _u
}

// SetOverGoal sets the "over_goal" field.
func (_u *BehaviorDayUpdateOne) SetOverGoal(v bool) *BehaviorDayUpdateOne {
	_u.mutation.SetOverGoal(v)
	return _u
}

// SetNillableOverGoal sets the "over_goal" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillableOverGoal(v *bool) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetOverGoal(*v)
	}
	return _u
}

// SetFocusMinutes sets the "focus_minutes" field.
func (_u *BehaviorDayUpdateOne) SetFocusMinutes(v int) *BehaviorDayUpdateOne {
	_u.mutation.ResetFocusMinutes()
	_u.mutation.SetFocusMinutes(v)
	return _u
}

// SetNillableFocusMinutes sets the "focus_minutes" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillableFocusMinutes(v *int) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetFocusMinutes(*v)
	}
	return _u
}

// AddFocusMinutes adds value to the "focus_minutes" field.
func (_u *BehaviorDayUpdateOne) AddFocusMinutes(v int) *BehaviorDayUpdateOne {
	_u.mutation.AddFocusMinutes(v)
	return _u
}

// SetStreakCounted sets the "streak_counted" field.
func (_u *BehaviorDayUpdateOne) SetStreakCounted(v bool) *BehaviorDayUpdateOne {
	_u.mutation.SetStreakCounted(v)
	return _u
}

// SetNillableStreakCounted sets the "streak_counted" field if the given value is not nil.
func (_u *BehaviorDayUpdateOne) SetNillableStreakCounted(v *bool) *BehaviorDayUpdateOne {
	if v != nil {
		_u.SetStreakCounted(*v)
	}
	return _u
}

// Mutation returns the BehaviorDayMutation object of the builder.
func (_u *BehaviorDayUpdateOne) Mutation() *BehaviorDayMutation {
	return _u.mutation
}

// Where appends a list predicates to the BehaviorDayUpdate builder.
func (_u *BehaviorDayUpdateOne) Where(ps ...predicate.BehaviorDay) *BehaviorDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BehaviorDayUpdateOne) Select(field string, fields ...string) *BehaviorDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BehaviorDay entity.
func (_u *BehaviorDayUpdateOne) Save(ctx context.Context) (*BehaviorDay, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehaviorDayUpdateOne) SaveX(ctx context.Context) *BehaviorDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BehaviorDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehaviorDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BehaviorDayUpdateOne) sqlSave(ctx context.Context) (_node *BehaviorDay, err error) {
	_spec := sqlgraph.NewUpdateSpec(behaviorday.Table, behaviorday.Columns, sqlgraph.NewFieldSpec(behaviorday.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BehaviorDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behaviorday.FieldID)
		for _, f := range fields {
			if !behaviorday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != behaviorday.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(behaviorday.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Present(); ok {
		_spec.SetField(behaviorday.FieldPresent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Focused(); ok {
		_spec.SetField(behaviorday.FieldFocused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetGoal(); ok {
		_spec.SetField(behaviorday.FieldMetGoal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OverGoal(); ok {
		_spec.SetField(behaviorday.FieldOverGoal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FocusMinutes(); ok {
		_spec.SetField(behaviorday.FieldFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocusMinutes(); ok {
		_spec.AddField(behaviorday.FieldFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCounted(); ok {
		_spec.SetField(behaviorday.FieldStreakCounted, field.TypeBool, value)
	}
	_node = &BehaviorDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behaviorday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
