// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ivelina/tendril/ent/activesession"
)

// ActiveSessionCreate is the builder for creating a ActiveSession entity.
type ActiveSessionCreate struct {
	config
	mutation *ActiveSessionMutation
	hooks    []Hook
}

// SetSingletonID sets the "singleton_id" field.
func (_c *ActiveSessionCreate) SetSingletonID(v int) *ActiveSessionCreate {
	_c.mutation.SetSingletonID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ActiveSessionCreate) SetSessionID(v string) *ActiveSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActiveSessionCreate) SetStatus(v string) *ActiveSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPlannedSeconds sets the "planned_seconds" field.
func (_c *ActiveSessionCreate) SetPlannedSeconds(v int) *ActiveSessionCreate {
	_c.mutation.SetPlannedSeconds(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ActiveSessionCreate) SetStartedAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableStartedAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCumulativePauseSeconds sets the "cumulative_pause_seconds" field.
func (_c *ActiveSessionCreate) SetCumulativePauseSeconds(v int) *ActiveSessionCreate {
	_c.mutation.SetCumulativePauseSeconds(v)
	return _c
}

// SetNillableCumulativePauseSeconds sets the "cumulative_pause_seconds" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableCumulativePauseSeconds(v *int) *ActiveSessionCreate {
	if v != nil {
		_c.SetCumulativePauseSeconds(*v)
	}
	return _c
}

// SetPauseStartedAt sets the "pause_started_at" field.
func (_c *ActiveSessionCreate) SetPauseStartedAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetPauseStartedAt(v)
	return _c
}

// SetNillablePauseStartedAt sets the "pause_started_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillablePauseStartedAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetPauseStartedAt(*v)
	}
	return _c
}

// SetPauseCount sets the "pause_count" field.
func (_c *ActiveSessionCreate) SetPauseCount(v int) *ActiveSessionCreate {
	_c.mutation.SetPauseCount(v)
	return _c
}

// SetNillablePauseCount sets the "pause_count" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillablePauseCount(v *int) *ActiveSessionCreate {
	if v != nil {
		_c.SetPauseCount(*v)
	}
	return _c
}

// SetElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field.
func (_c *ActiveSessionCreate) SetElapsedSnapshotSeconds(v int) *ActiveSessionCreate {
	_c.mutation.SetElapsedSnapshotSeconds(v)
	return _c
}

// SetNillableElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableElapsedSnapshotSeconds(v *int) *ActiveSessionCreate {
	if v != nil {
		_c.SetElapsedSnapshotSeconds(*v)
	}
	return _c
}

// SetGoalReached sets the "goal_reached" field.
func (_c *ActiveSessionCreate) SetGoalReached(v bool) *ActiveSessionCreate {
	_c.mutation.SetGoalReached(v)
	return _c
}

// SetNillableGoalReached sets the "goal_reached" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableGoalReached(v *bool) *ActiveSessionCreate {
	if v != nil {
		_c.SetGoalReached(*v)
	}
	return _c
}

// SetWasAgitated sets the "was_agitated" field.
func (_c *ActiveSessionCreate) SetWasAgitated(v bool) *ActiveSessionCreate {
	_c.mutation.SetWasAgitated(v)
	return _c
}

// SetNillableWasAgitated sets the "was_agitated" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableWasAgitated(v *bool) *ActiveSessionCreate {
	if v != nil {
		_c.SetWasAgitated(*v)
	}
	return _c
}

// SetReported sets the "reported" field.
func (_c *ActiveSessionCreate) SetReported(v bool) *ActiveSessionCreate {
	_c.mutation.SetReported(v)
	return _c
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableReported(v *bool) *ActiveSessionCreate {
	if v != nil {
		_c.SetReported(*v)
	}
	return _c
}

// SetMarkerEnded sets the "marker_ended" field.
func (_c *ActiveSessionCreate) SetMarkerEnded(v bool) *ActiveSessionCreate {
	_c.mutation.SetMarkerEnded(v)
	return _c
}

// SetNillableMarkerEnded sets the "marker_ended" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableMarkerEnded(v *bool) *ActiveSessionCreate {
	if v != nil {
		_c.SetMarkerEnded(*v)
	}
	return _c
}

// SetSuspectedInterruptionAt sets the "suspected_interruption_at" field.
func (_c *ActiveSessionCreate) SetSuspectedInterruptionAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetSuspectedInterruptionAt(v)
	return _c
}

// SetNillableSuspectedInterruptionAt sets the "suspected_interruption_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableSuspectedInterruptionAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetSuspectedInterruptionAt(*v)
	}
	return _c
}

// SetLastAutosaveAt sets the "last_autosave_at" field.
func (_c *ActiveSessionCreate) SetLastAutosaveAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetLastAutosaveAt(v)
	return _c
}

// SetNillableLastAutosaveAt sets the "last_autosave_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableLastAutosaveAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetLastAutosaveAt(*v)
	}
	return _c
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_c *ActiveSessionCreate) Mutation() *ActiveSessionMutation {
	return _c.mutation
}

// Save creates the ActiveSession in the database.
func (_c *ActiveSessionCreate) Save(ctx context.Context) (*ActiveSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActiveSessionCreate) SaveX(ctx context.Context) *ActiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActiveSessionCreate) defaults() {
	if _, ok := _c.mutation.CumulativePauseSeconds(); !ok {
		v := activesession.DefaultCumulativePauseSeconds
		_c.mutation.SetCumulativePauseSeconds(v)
	}
	if _, ok := _c.mutation.PauseCount(); !ok {
		v := activesession.DefaultPauseCount
		_c.mutation.SetPauseCount(v)
	}
	if _, ok := _c.mutation.ElapsedSnapshotSeconds(); !ok {
		v := activesession.DefaultElapsedSnapshotSeconds
		_c.mutation.SetElapsedSnapshotSeconds(v)
	}
	if _, ok := _c.mutation.GoalReached(); !ok {
		v := activesession.DefaultGoalReached
		_c.mutation.SetGoalReached(v)
	}
	if _, ok := _c.mutation.WasAgitated(); !ok {
		v := activesession.DefaultWasAgitated
		_c.mutation.SetWasAgitated(v)
	}
	if _, ok := _c.mutation.Reported(); !ok {
		v := activesession.DefaultReported
		_c.mutation.SetReported(v)
	}
	if _, ok := _c.mutation.MarkerEnded(); !ok {
		v := activesession.DefaultMarkerEnded
		_c.mutation.SetMarkerEnded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActiveSessionCreate) check() error {
	if _, ok := _c.mutation.SingletonID(); !ok {
		return &ValidationError{Name: "singleton_id", err: errors.New(`ent: missing required field "ActiveSession.singleton_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ActiveSession.session_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ActiveSession.status"`)}
	}
	if _, ok := _c.mutation.PlannedSeconds(); !ok {
		return &ValidationError{Name: "planned_seconds", err: errors.New(`ent: missing required field "ActiveSession.planned_seconds"`)}
	}
	if _, ok := _c.mutation.CumulativePauseSeconds(); !ok {
		return &ValidationError{Name: "cumulative_pause_seconds", err: errors.New(`ent: missing required field "ActiveSession.cumulative_pause_seconds"`)}
	}
	if _, ok := _c.mutation.PauseCount(); !ok {
		return &ValidationError{Name: "pause_count", err: errors.New(`ent: missing required field "ActiveSession.pause_count"`)}
	}
	if _, ok := _c.mutation.ElapsedSnapshotSeconds(); !ok {
		return &ValidationError{Name: "elapsed_snapshot_seconds", err: errors.New(`ent: missing required field "ActiveSession.elapsed_snapshot_seconds"`)}
	}
	if _, ok := _c.mutation.GoalReached(); !ok {
		return &ValidationError{Name: "goal_reached", err: errors.New(`ent: missing required field "ActiveSession.goal_reached"`)}
	}
	if _, ok := _c.mutation.WasAgitated(); !ok {
		return &ValidationError{Name: "was_agitated", err: errors.New(`ent: missing required field "ActiveSession.was_agitated"`)}
	}
	if _, ok := _c.mutation.Reported(); !ok {
		return &ValidationError{Name: "reported", err: errors.New(`ent: missing required field "ActiveSession.reported"`)}
	}
	if _, ok := _c.mutation.MarkerEnded(); !ok {
		return &ValidationError{Name: "marker_ended", err: errors.New(`ent: missing required field "ActiveSession.marker_ended"`)}
	}
	return nil
}

func (_c *ActiveSessionCreate) sqlSave(ctx context.Context) (*ActiveSession, error) {
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

func (_c *ActiveSessionCreate) createSpec() (*ActiveSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ActiveSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activesession.Table, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SingletonID(); ok {
		_spec.SetField(activesession.FieldSingletonID, field.TypeInt, value)
		_node.SingletonID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(activesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(activesession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PlannedSeconds(); ok {
		_spec.SetField(activesession.FieldPlannedSeconds, field.TypeInt, value)
		_node.PlannedSeconds = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(activesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CumulativePauseSeconds(); ok {
		_spec.SetField(activesession.FieldCumulativePauseSeconds, field.TypeInt, value)
		_node.CumulativePauseSeconds = value
	}
	if value, ok := _c.mutation.PauseStartedAt(); ok {
		_spec.SetField(activesession.FieldPauseStartedAt, field.TypeTime, value)
		_node.PauseStartedAt = &value
	}
	if value, ok := _c.mutation.PauseCount(); ok {
		_spec.SetField(activesession.FieldPauseCount, field.TypeInt, value)
		_node.PauseCount = value
	}
	if value, ok := _c.mutation.ElapsedSnapshotSeconds(); ok {
		_spec.SetField(activesession.FieldElapsedSnapshotSeconds, field.TypeInt, value)
		_node.ElapsedSnapshotSeconds = value
	}
	if value, ok := _c.mutation.GoalReached(); ok {
		_spec.SetField(activesession.FieldGoalReached, field.TypeBool, value)
		_node.GoalReached = value
	}
	if value, ok := _c.mutation.WasAgitated(); ok {
		_spec.SetField(activesession.FieldWasAgitated, field.TypeBool, value)
		_node.WasAgitated = value
	}
	if value, ok := _c.mutation.Reported(); ok {
		_spec.SetField(activesession.FieldReported, field.TypeBool, value)
		_node.Reported = value
	}
	if value, ok := _c.mutation.MarkerEnded(); ok {
		_spec.SetField(activesession.FieldMarkerEnded, field.TypeBool, value)
		_node.MarkerEnded = value
	}
	if value, ok := _c.mutation.SuspectedInterruptionAt(); ok {
		_spec.SetField(activesession.FieldSuspectedInterruptionAt, field.TypeTime, value)
		_node.SuspectedInterruptionAt = &value
	}
	if value, ok := _c.mutation.LastAutosaveAt(); ok {
		_spec.SetField(activesession.FieldLastAutosaveAt, field.TypeTime, value)
		_node.LastAutosaveAt = &value
	}
	return _node, _spec
}

// ActiveSessionCreateBulk is the builder for creating many ActiveSession entities in bulk.
type ActiveSessionCreateBulk struct {
	config
	err      error
	builders []*ActiveSessionCreate
}

// Save creates the ActiveSession entities in the database.
func (_c *ActiveSessionCreateBulk) Save(ctx context.Context) ([]*ActiveSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActiveSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActiveSessionMutation)
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
func (_c *ActiveSessionCreateBulk) SaveX(ctx context.Context) []*ActiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
