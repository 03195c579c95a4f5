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
	"github.com/ivelina/tendril/ent/predicate"
	"github.com/ivelina/tendril/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *SessionEventUpdate) SetMinutes(v int) *SessionEventUpdate {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMinutes(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *SessionEventUpdate) AddMinutes(v int) *SessionEventUpdate {
	_u.mutation.AddMinutes(v)
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *SessionEventUpdate) SetPlannedMinutes(v int) *SessionEventUpdate {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePlannedMinutes(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *SessionEventUpdate) AddPlannedMinutes(v int) *SessionEventUpdate {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *SessionEventUpdate) SetRating(v float64) *SessionEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRating(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *SessionEventUpdate) AddRating(v float64) *SessionEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *SessionEventUpdate) ClearRating() *SessionEventUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionEventUpdate) SetCompleted(v bool) *SessionEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCompleted(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetGoalReached sets the "goal_reached" field.
func (_u *SessionEventUpdate) SetGoalReached(v bool) *SessionEventUpdate {
	_u.mutation.SetGoalReached(v)
	return _u
}

// SetNillableGoalReached sets the "goal_reached" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableGoalReached(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetGoalReached(*v)
	}
	return _u
}

// SetWasAgitated sets the "was_agitated" field.
func (_u *SessionEventUpdate) SetWasAgitated(v bool) *SessionEventUpdate {
	_u.mutation.SetWasAgitated(v)
	return _u
}

// SetNillableWasAgitated sets the "was_agitated" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableWasAgitated(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetWasAgitated(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionEventUpdate) SetStartedAt(v time.Time) *SessionEventUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStartedAt(v *time.Time) *SessionEventUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetClosedOn sets the "closed_on" field.
func (_u *SessionEventUpdate) SetClosedOn(v string) *SessionEventUpdate {
	_u.mutation.SetClosedOn(v)
	return _u
}

// SetNillableClosedOn sets the "closed_on" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableClosedOn(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetClosedOn(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(sessionevent.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(sessionevent.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(sessionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(sessionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(sessionevent.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(sessionevent.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(sessionevent.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GoalReached(); ok {
		_spec.SetField(sessionevent.FieldGoalReached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WasAgitated(); ok {
		_spec.SetField(sessionevent.FieldWasAgitated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionevent.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedOn(); ok {
		_spec.SetField(sessionevent.FieldClosedOn, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *SessionEventUpdateOne) SetMinutes(v int) *SessionEventUpdateOne {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMinutes(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *SessionEventUpdateOne) AddMinutes(v int) *SessionEventUpdateOne {
	_u.mutation.AddMinutes(v)
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *SessionEventUpdateOne) SetPlannedMinutes(v int) *SessionEventUpdateOne {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePlannedMinutes(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *SessionEventUpdateOne) AddPlannedMinutes(v int) *SessionEventUpdateOne {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *SessionEventUpdateOne) SetRating(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRating(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *SessionEventUpdateOne) AddRating(v float64) *SessionEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *SessionEventUpdateOne) ClearRating() *SessionEventUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionEventUpdateOne) SetCompleted(v bool) *SessionEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCompleted(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetGoalReached sets the "goal_reached" field.
func (_u *SessionEventUpdateOne) SetGoalReached(v bool) *SessionEventUpdateOne {
	_u.mutation.SetGoalReached(v)
	return _u
}

// SetNillableGoalReached sets the "goal_reached" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableGoalReached(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetGoalReached(*v)
	}
	return _u
}

// SetWasAgitated sets the "was_agitated" field.
func (_u *SessionEventUpdateOne) SetWasAgitated(v bool) *SessionEventUpdateOne {
	_u.mutation.SetWasAgitated(v)
	return _u
}

// SetNillableWasAgitated sets the "was_agitated" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableWasAgitated(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetWasAgitated(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionEventUpdateOne) SetStartedAt(v time.Time) *SessionEventUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStartedAt(v *time.Time) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetClosedOn sets the "closed_on" field.
func (_u *SessionEventUpdateOne) SetClosedOn(v string) *SessionEventUpdateOne {
	_u.mutation.SetClosedOn(v)
	return _u
}

// SetNillableClosedOn sets the "closed_on" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableClosedOn(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetClosedOn(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(sessionevent.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(sessionevent.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(sessionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(sessionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(sessionevent.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(sessionevent.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(sessionevent.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GoalReached(); ok {
		_spec.SetField(sessionevent.FieldGoalReached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WasAgitated(); ok {
		_spec.SetField(sessionevent.FieldWasAgitated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionevent.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedOn(); ok {
		_spec.SetField(sessionevent.FieldClosedOn, field.TypeString, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
