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
	"github.com/ivelina/tendril/ent/activesession"
	"github.com/ivelina/tendril/ent/predicate"
)

// ActiveSessionUpdate is the builder for updating ActiveSession entities.
type ActiveSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ActiveSessionMutation
}

// Where appends a list predicates to the ActiveSessionUpdate builder.
func (_u *ActiveSessionUpdate) Where(ps ...predicate.ActiveSession) *ActiveSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSingletonID sets the "singleton_id" field.
func (_u *ActiveSessionUpdate) SetSingletonID(v int) *ActiveSessionUpdate {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableSingletonID(v *int) *ActiveSessionUpdate {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *ActiveSessionUpdate) AddSingletonID(v int) *ActiveSessionUpdate {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActiveSessionUpdate) SetSessionID(v string) *ActiveSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableSessionID(v *string) *ActiveSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActiveSessionUpdate) SetStatus(v string) *ActiveSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableStatus(v *string) *ActiveSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlannedSeconds sets the "planned_seconds" field.
func (_u *ActiveSessionUpdate) SetPlannedSeconds(v int) *ActiveSessionUpdate {
	_u.mutation.ResetPlannedSeconds()
	_u.mutation.SetPlannedSeconds(v)
	return _u
}

// SetNillablePlannedSeconds sets the "planned_seconds" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillablePlannedSeconds(v *int) *ActiveSessionUpdate {
	if v != nil {
		_u.SetPlannedSeconds(*v)
	}
	return _u
}

// AddPlannedSeconds adds value to the "planned_seconds" field.
func (_u *ActiveSessionUpdate) AddPlannedSeconds(v int) *ActiveSessionUpdate {
	_u.mutation.AddPlannedSeconds(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ActiveSessionUpdate) SetStartedAt(v time.Time) *ActiveSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableStartedAt(v *time.Time) *ActiveSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ActiveSessionUpdate) ClearStartedAt() *ActiveSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCumulativePauseSeconds sets the "cumulative_pause_seconds" field.
func (_u *ActiveSessionUpdate) SetCumulativePauseSeconds(v int) *ActiveSessionUpdate {
	_u.mutation.ResetCumulativePauseSeconds()
	_u.mutation.SetCumulativePauseSeconds(v)
	return _u
}

// SetNillableCumulativePauseSeconds sets the "cumulative_pause_seconds" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableCumulativePauseSeconds(v *int) *ActiveSessionUpdate {
	if v != nil {
		_u.SetCumulativePauseSeconds(*v)
	}
	return _u
}

// AddCumulativePauseSeconds adds value to the "cumulative_pause_seconds" field.
func (_u *ActiveSessionUpdate) AddCumulativePauseSeconds(v int) *ActiveSessionUpdate {
	_u.mutation.AddCumulativePauseSeconds(v)
	return _u
}

// SetPauseStartedAt sets the "pause_started_at" field.
func (_u *ActiveSessionUpdate) SetPauseStartedAt(v time.Time) *ActiveSessionUpdate {
	_u.mutation.SetPauseStartedAt(v)
	return _u
}

// SetNillablePauseStartedAt sets the "pause_started_at" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillablePauseStartedAt(v *time.Time) *ActiveSessionUpdate {
	if v != nil {
		_u.SetPauseStartedAt(*v)
	}
	return _u
}

// ClearPauseStartedAt clears the value of the "pause_started_at" field.
func (_u *ActiveSessionUpdate) ClearPauseStartedAt() *ActiveSessionUpdate {
	_u.mutation.ClearPauseStartedAt()
	return _u
}

// SetPauseCount sets the "pause_count" field.
func (_u *ActiveSessionUpdate) SetPauseCount(v int) *ActiveSessionUpdate {
	_u.mutation.ResetPauseCount()
	_u.mutation.SetPauseCount(v)
	return _u
}

// SetNillablePauseCount sets the "pause_count" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillablePauseCount(v *int) *ActiveSessionUpdate {
	if v != nil {
		_u.SetPauseCount(*v)
	}
	return _u
}

// AddPauseCount adds value to the "pause_count" field.
func (_u *ActiveSessionUpdate) AddPauseCount(v int) *ActiveSessionUpdate {
	_u.mutation.AddPauseCount(v)
	return _u
}

// SetElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field.
func (_u *ActiveSessionUpdate) SetElapsedSnapshotSeconds(v int) *ActiveSessionUpdate {
	_u.mutation.ResetElapsedSnapshotSeconds()
	_u.mutation.SetElapsedSnapshotSeconds(v)
	return _u
}

// SetNillableElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableElapsedSnapshotSeconds(v *int) *ActiveSessionUpdate {
	if v != nil {
		_u.SetElapsedSnapshotSeconds(*v)
	}
	return _u
}

// AddElapsedSnapshotSeconds adds value to the "elapsed_snapshot_seconds" field.
func (_u *ActiveSessionUpdate) AddElapsedSnapshotSeconds(v int) *ActiveSessionUpdate {
	_u.mutation.AddElapsedSnapshotSeconds(v)
	return _u
}

// SetGoalReached sets the "goal_reached" field.
func (_u *ActiveSessionUpdate) SetGoalReached(v bool) *ActiveSessionUpdate {
	_u.mutation.SetGoalReached(v)
	return _u
}

// SetNillableGoalReached sets the "goal_reached" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableGoalReached(v *bool) *ActiveSessionUpdate {
	if v != nil {
		_u.SetGoalReached(*v)
	}
	return _u
}

// SetWasAgitated sets the "was_agitated" field.
func (_u *ActiveSessionUpdate) SetWasAgitated(v bool) *ActiveSessionUpdate {
	_u.mutation.SetWasAgitated(v)
	return _u
}

// SetNillableWasAgitated sets the "was_agitated" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableWasAgitated(v *bool) *ActiveSessionUpdate {
	if v != nil {
		_u.SetWasAgitated(*v)
	}
	return _u
}

// SetReported sets the "reported" field.
func (_u *ActiveSessionUpdate) SetReported(v bool) *ActiveSessionUpdate {
	_u.mutation.SetReported(v)
	return _u
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableReported(v *bool) *ActiveSessionUpdate {
	if v != nil {
		_u.SetReported(*v)
	}
	return _u
}

// SetMarkerEnded sets the "marker_ended" field.
func (_u *ActiveSessionUpdate) SetMarkerEnded(v bool) *ActiveSessionUpdate {
	_u.mutation.SetMarkerEnded(v)
	return _u
}

// SetNillableMarkerEnded sets the "marker_ended" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableMarkerEnded(v *bool) *ActiveSessionUpdate {
	if v != nil {
		_u.SetMarkerEnded(*v)
	}
	return _u
}

// SetSuspectedInterruptionAt sets the "suspected_interruption_at" field.
func (_u *ActiveSessionUpdate) SetSuspectedInterruptionAt(v time.Time) *ActiveSessionUpdate {
	_u.mutation.SetSuspectedInterruptionAt(v)
	return _u
}

// SetNillableSuspectedInterruptionAt sets the "suspected_interruption_at" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableSuspectedInterruptionAt(v *time.Time) *ActiveSessionUpdate {
	if v != nil {
		_u.SetSuspectedInterruptionAt(*v)
	}
	return _u
}

// ClearSuspectedInterruptionAt clears the value of the "suspected_interruption_at" field.
func (_u *ActiveSessionUpdate) ClearSuspectedInterruptionAt() *ActiveSessionUpdate {
	_u.mutation.ClearSuspectedInterruptionAt()
	return _u
}

// SetLastAutosaveAt sets the "last_autosave_at" field.
func (_u *ActiveSessionUpdate) SetLastAutosaveAt(v time.Time) *ActiveSessionUpdate {
	_u.mutation.SetLastAutosaveAt(v)
	return _u
}

// SetNillableLastAutosaveAt sets the "last_autosave_at" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableLastAutosaveAt(v *time.Time) *ActiveSessionUpdate {
	if v != nil {
		_u.SetLastAutosaveAt(*v)
	}
	return _u
}

// ClearLastAutosaveAt clears the value of the "last_autosave_at" field.
func (_u *ActiveSessionUpdate) ClearLastAutosaveAt() *ActiveSessionUpdate {
	_u.mutation.ClearLastAutosaveAt()
	return _u
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_u *ActiveSessionUpdate) Mutation() *ActiveSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActiveSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActiveSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActiveSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activesession.Table, activesession.Columns, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SingletonID(); ok {
		_spec.SetField(activesession.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(activesession.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedSeconds(); ok {
		_spec.SetField(activesession.FieldPlannedSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedSeconds(); ok {
		_spec.AddField(activesession.FieldPlannedSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(activesession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(activesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CumulativePauseSeconds(); ok {
		_spec.SetField(activesession.FieldCumulativePauseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCumulativePauseSeconds(); ok {
		_spec.AddField(activesession.FieldCumulativePauseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PauseStartedAt(); ok {
		_spec.SetField(activesession.FieldPauseStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PauseStartedAtCleared() {
		_spec.ClearField(activesession.FieldPauseStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PauseCount(); ok {
		_spec.SetField(activesession.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPauseCount(); ok {
		_spec.AddField(activesession.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSnapshotSeconds(); ok {
		_spec.SetField(activesession.FieldElapsedSnapshotSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSnapshotSeconds(); ok {
		_spec.AddField(activesession.FieldElapsedSnapshotSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalReached(); ok {
		_spec.SetField(activesession.FieldGoalReached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WasAgitated(); ok {
		_spec.SetField(activesession.FieldWasAgitated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reported(); ok {
		_spec.SetField(activesession.FieldReported, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarkerEnded(); ok {
		_spec.SetField(activesession.FieldMarkerEnded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspectedInterruptionAt(); ok {
		_spec.SetField(activesession.FieldSuspectedInterruptionAt, field.TypeTime, value)
	}
	if _u.mutation.SuspectedInterruptionAtCleared() {
		_spec.ClearField(activesession.FieldSuspectedInterruptionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastAutosaveAt(); ok {
		_spec.SetField(activesession.FieldLastAutosaveAt, field.TypeTime, value)
	}
	if _u.mutation.LastAutosaveAtCleared() {
		_spec.ClearField(activesession.FieldLastAutosaveAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActiveSessionUpdateOne is the builder for updating a single ActiveSession entity.
type ActiveSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActiveSessionMutation
}

// SetSingletonID sets the "singleton_id" field.
func (_u *ActiveSessionUpdateOne) SetSingletonID(v int) *ActiveSessionUpdateOne {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableSingletonID(v *int) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *ActiveSessionUpdateOne) AddSingletonID(v int) *ActiveSessionUpdateOne {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActiveSessionUpdateOne) SetSessionID(v string) *ActiveSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableSessionID(v *string) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActiveSessionUpdateOne) SetStatus(v string) *ActiveSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableStatus(v *string) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlannedSeconds sets the "planned_seconds" field.
func (_u *ActiveSessionUpdateOne) SetPlannedSeconds(v int) *ActiveSessionUpdateOne {
	_u.mutation.ResetPlannedSeconds()
	_u.mutation.SetPlannedSeconds(v)
	return _u
}

// SetNillablePlannedSeconds sets the "planned_seconds" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillablePlannedSeconds(v *int) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetPlannedSeconds(*v)
	}
	return _u
}

// AddPlannedSeconds adds value to the "planned_seconds" field.
func (_u *ActiveSessionUpdateOne) AddPlannedSeconds(v int) *ActiveSessionUpdateOne {
	_u.mutation.AddPlannedSeconds(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ActiveSessionUpdateOne) SetStartedAt(v time.Time) *ActiveSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableStartedAt(v *time.Time) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ActiveSessionUpdateOne) ClearStartedAt() *ActiveSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCumulativePauseSeconds sets the "cumulative_pause_seconds" field.
func (_u *ActiveSessionUpdateOne) SetCumulativePauseSeconds(v int) *ActiveSessionUpdateOne {
	_u.mutation.ResetCumulativePauseSeconds()
	_u.mutation.SetCumulativePauseSeconds(v)
	return _u
}

// SetNillableCumulativePauseSeconds sets the "cumulative_pause_seconds" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableCumulativePauseSeconds(v *int) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetCumulativePauseSeconds(*v)
	}
	return _u
}

// AddCumulativePauseSeconds adds value to the "cumulative_pause_seconds" field.
func (_u *ActiveSessionUpdateOne) AddCumulativePauseSeconds(v int) *ActiveSessionUpdateOne {
	_u.mutation.AddCumulativePauseSeconds(v)
	return _u
}

// SetPauseStartedAt sets the "pause_started_at" field.
func (_u *ActiveSessionUpdateOne) SetPauseStartedAt(v time.Time) *ActiveSessionUpdateOne {
	_u.mutation.SetPauseStartedAt(v)
	return _u
}

// SetNillablePauseStartedAt sets the "pause_started_at" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillablePauseStartedAt(v *time.Time) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetPauseStartedAt(*v)
	}
	return _u
}

// ClearPauseStartedAt clears the value of the "pause_started_at" field.
func (_u *ActiveSessionUpdateOne) ClearPauseStartedAt() *ActiveSessionUpdateOne {
	_u.mutation.ClearPauseStartedAt()
	return _u
}

// SetPauseCount sets the "pause_count" field.
func (_u *ActiveSessionUpdateOne) SetPauseCount(v int) *ActiveSessionUpdateOne {
	_u.mutation.ResetPauseCount()
	_u.mutation.SetPauseCount(v)
	return _u
}

// SetNillablePauseCount sets the "pause_count" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillablePauseCount(v *int) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetPauseCount(*v)
	}
	return _u
}

// AddPauseCount adds value to the "pause_count" field.
func (_u *ActiveSessionUpdateOne) AddPauseCount(v int) *ActiveSessionUpdateOne {
	_u.mutation.AddPauseCount(v)
	return _u
}

// SetElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field.
func (_u *ActiveSessionUpdateOne) SetElapsedSnapshotSeconds(v int) *ActiveSessionUpdateOne {
	_u.mutation.ResetElapsedSnapshotSeconds()
	_u.mutation.SetElapsedSnapshotSeconds(v)
	return _u
}

// SetNillableElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableElapsedSnapshotSeconds(v *int) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetElapsedSnapshotSeconds(*v)
	}
	return _u
}

// AddElapsedSnapshotSeconds adds value to the "elapsed_snapshot_seconds" field.
func (_u *ActiveSessionUpdateOne) AddElapsedSnapshotSeconds(v int) *ActiveSessionUpdateOne {
	_u.mutation.AddElapsedSnapshotSeconds(v)
	return _u
}

// SetGoalReached sets the "goal_reached" field.
func (_u *ActiveSessionUpdateOne) SetGoalReached(v bool) *ActiveSessionUpdateOne {
	_u.mutation.SetGoalReached(v)
	return _u
}

// SetNillableGoalReached sets the "goal_reached" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableGoalReached(v *bool) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetGoalReached(*v)
	}
	return _u
}

// SetWasAgitated sets the "was_agitated" field.
func (_u *ActiveSessionUpdateOne) SetWasAgitated(v bool) *ActiveSessionUpdateOne {
	_u.mutation.SetWasAgitated(v)
	return _u
}

// SetNillableWasAgitated sets the "was_agitated" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableWasAgitated(v *bool) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetWasAgitated(*v)
	}
	return _u
}

// SetReported sets the "reported" field.
func (_u *ActiveSessionUpdateOne) SetReported(v bool) *ActiveSessionUpdateOne {
	_u.mutation.SetReported(v)
	return _u
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableReported(v *bool) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetReported(*v)
	}
	return _u
}

// SetMarkerEnded sets the "marker_ended" field.
func (_u *ActiveSessionUpdateOne) SetMarkerEnded(v bool) *ActiveSessionUpdateOne {
	_u.mutation.SetMarkerEnded(v)
	return _u
}

// SetNillableMarkerEnded sets the "marker_ended" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableMarkerEnded(v *bool) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetMarkerEnded(*v)
	}
	return _u
}

// SetSuspectedInterruptionAt sets the "suspected_interruption_at" field.
func (_u *ActiveSessionUpdateOne) SetSuspectedInterruptionAt(v time.Time) *ActiveSessionUpdateOne {
	_u.mutation.SetSuspectedInterruptionAt(v)
	return _u
}

// SetNillableSuspectedInterruptionAt sets the "suspected_interruption_at" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableSuspectedInterruptionAt(v *time.Time) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetSuspectedInterruptionAt(*v)
	}
	return _u
}

// ClearSuspectedInterruptionAt clears the value of the "suspected_interruption_at" field.
func (_u *ActiveSessionUpdateOne) ClearSuspectedInterruptionAt() *ActiveSessionUpdateOne {
	_u.mutation.ClearSuspectedInterruptionAt()
	return _u
}

// SetLastAutosaveAt sets the "last_autosave_at" field.
func (_u *ActiveSessionUpdateOne) SetLastAutosaveAt(v time.Time) *ActiveSessionUpdateOne {
	_u.mutation.SetLastAutosaveAt(v)
	return _u
}

// SetNillableLastAutosaveAt sets the "last_autosave_at" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableLastAutosaveAt(v *time.Time) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetLastAutosaveAt(*v)
	}
	return _u
}

// ClearLastAutosaveAt clears the value of the "last_autosave_at" field.
func (_u *ActiveSessionUpdateOne) ClearLastAutosaveAt() *ActiveSessionUpdateOne {
	_u.mutation.ClearLastAutosaveAt()
	return _u
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_u *ActiveSessionUpdateOne) Mutation() *ActiveSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActiveSessionUpdate builder.
func (_u *ActiveSessionUpdateOne) Where(ps ...predicate.ActiveSession) *ActiveSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActiveSessionUpdateOne) Select(field string, fields ...string) *ActiveSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActiveSession entity.
func (_u *ActiveSessionUpdateOne) Save(ctx context.Context) (*ActiveSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSessionUpdateOne) SaveX(ctx context.Context) *ActiveSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActiveSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActiveSessionUpdateOne) sqlSave(ctx context.Context) (_node *ActiveSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(activesession.Table, activesession.Columns, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActiveSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activesession.FieldID)
		for _, f := range fields {
			if !activesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activesession.FieldID {
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
		_spec.SetField(activesession.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(activesession.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedSeconds(); ok {
		_spec.SetField(activesession.FieldPlannedSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedSeconds(); ok {
		_spec.AddField(activesession.FieldPlannedSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(activesession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(activesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CumulativePauseSeconds(); ok {
		_spec.SetField(activesession.FieldCumulativePauseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCumulativePauseSeconds(); ok {
		_spec.AddField(activesession.FieldCumulativePauseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PauseStartedAt(); ok {
		_spec.SetField(activesession.FieldPauseStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PauseStartedAtCleared() {
		_spec.ClearField(activesession.FieldPauseStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PauseCount(); ok {
		_spec.SetField(activesession.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPauseCount(); ok {
		_spec.AddField(activesession.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSnapshotSeconds(); ok {
		_spec.SetField(activesession.FieldElapsedSnapshotSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSnapshotSeconds(); ok {
		_spec.AddField(activesession.FieldElapsedSnapshotSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalReached(); ok {
		_spec.SetField(activesession.FieldGoalReached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WasAgitated(); ok {
		_spec.SetField(activesession.FieldWasAgitated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reported(); ok {
		_spec.SetField(activesession.FieldReported, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarkerEnded(); ok {
		_spec.SetField(activesession.FieldMarkerEnded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspectedInterruptionAt(); ok {
		_spec.SetField(activesession.FieldSuspectedInterruptionAt, field.TypeTime, value)
	}
	if _u.mutation.SuspectedInterruptionAtCleared() {
		_spec.ClearField(activesession.FieldSuspectedInterruptionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastAutosaveAt(); ok {
		_spec.SetField(activesession.FieldLastAutosaveAt, field.TypeTime, value)
	}
	if _u.mutation.LastAutosaveAtCleared() {
		_spec.ClearField(activesession.FieldLastAutosaveAt, field.TypeTime)
	}
	_node = &ActiveSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
