// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/activesession"
	"github.com/ivelina/tendril/ent/behaviorday"
	"github.com/ivelina/tendril/ent/flowstate"
	"github.com/ivelina/tendril/ent/predicate"
	"github.com/ivelina/tendril/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActiveSession = "ActiveSession"
	TypeBehaviorDay   = "BehaviorDay"
	TypeFlowState     = "FlowState"
	TypeSessionEvent  = "SessionEvent"
)

// ActiveSessionMutation represents an operation that mutates the ActiveSession nodes in the graph.
type ActiveSessionMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	singleton_id                *int
	addsingleton_id             *int
	session_id                  *string
	status                      *string
	planned_seconds             *int
	addplanned_seconds          *int
	started_at                  *time.Time
	cumulative_pause_seconds    *int
	addcumulative_pause_seconds *int
	pause_started_at            *time.Time
	pause_count                 *int
	addpause_count              *int
	elapsed_snapshot_seconds    *int
	addelapsed_snapshot_seconds *int
	goal_reached                *bool
	was_agitated                *bool
	reported                    *bool
	marker_ended                *bool
	suspected_interruption_at   *time.Time
	last_autosave_at            *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*ActiveSession, error)
	predicates                  []predicate.ActiveSession
}

var _ ent.Mutation = (*ActiveSessionMutation)(nil)

// activesessionOption allows management of the mutation configuration using functional options.
type activesessionOption func(*ActiveSessionMutation)

// newActiveSessionMutation creates new mutation for the ActiveSession entity.
func newActiveSessionMutation(c config, op Op, opts ...activesessionOption) *ActiveSessionMutation {
	m := &ActiveSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeActiveSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActiveSessionID sets the ID field of the mutation.
func withActiveSessionID(id int) activesessionOption {
	return func(m *ActiveSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ActiveSession
		)
		m.oldValue = func(ctx context.Context) (*ActiveSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActiveSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActiveSession sets the old ActiveSession of the mutation.
func withActiveSession(node *ActiveSession) activesessionOption {
	return func(m *ActiveSessionMutation) {
		m.oldValue = func(context.Context) (*ActiveSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActiveSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActiveSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActiveSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActiveSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActiveSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSingletonID sets the "singleton_id" field.
func (m *ActiveSessionMutation) SetSingletonID(i int) {
	m.singleton_id = &i
	m.addsingleton_id = nil
}

// SingletonID returns the value of the "singleton_id" field in the mutation.
func (m *ActiveSessionMutation) SingletonID() (r int, exists bool) {
	v := m.singleton_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSingletonID returns the old "singleton_id" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldSingletonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSingletonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSingletonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSingletonID: %w", err)
	}
	return oldValue.SingletonID, nil
}

// AddSingletonID adds i to the "singleton_id" field.
func (m *ActiveSessionMutation) AddSingletonID(i int) {
	if m.addsingleton_id != nil {
		*m.addsingleton_id += i
	} else {
		m.addsingleton_id = &i
	}
}

// AddedSingletonID returns the value that was added to the "singleton_id" field in this mutation.
func (m *ActiveSessionMutation) AddedSingletonID() (r int, exists bool) {
	v := m.addsingleton_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSingletonID resets all changes to the "singleton_id" field.
func (m *ActiveSessionMutation) ResetSingletonID() {
	m.singleton_id = nil
	m.addsingleton_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ActiveSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActiveSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActiveSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStatus sets the "status" field.
func (m *ActiveSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ActiveSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActiveSessionMutation) ResetStatus() {
	m.status = nil
}

// SetPlannedSeconds sets the "planned_seconds" field.
func (m *ActiveSessionMutation) SetPlannedSeconds(i int) {
	m.planned_seconds = &i
	m.addplanned_seconds = nil
}

// PlannedSeconds returns the value of the "planned_seconds" field in the mutation.
func (m *ActiveSessionMutation) PlannedSeconds() (r int, exists bool) {
	v := m.planned_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedSeconds returns the old "planned_seconds" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldPlannedSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedSeconds: %w", err)
	}
	return oldValue.PlannedSeconds, nil
}

// AddPlannedSeconds adds i to the "planned_seconds" field.
func (m *ActiveSessionMutation) AddPlannedSeconds(i int) {
	if m.addplanned_seconds != nil {
		*m.addplanned_seconds += i
	} else {
		m.addplanned_seconds = &i
	}
}

// AddedPlannedSeconds returns the value that was added to the "planned_seconds" field in this mutation.
func (m *ActiveSessionMutation) AddedPlannedSeconds() (r int, exists bool) {
	v := m.addplanned_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedSeconds resets all changes to the "planned_seconds" field.
func (m *ActiveSessionMutation) ResetPlannedSeconds() {
	m.planned_seconds = nil
	m.addplanned_seconds = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ActiveSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ActiveSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ActiveSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[activesession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ActiveSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[activesession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ActiveSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, activesession.FieldStartedAt)
}

// SetCumulativePauseSeconds sets the "cumulative_pause_seconds" field.
func (m *ActiveSessionMutation) SetCumulativePauseSeconds(i int) {
	m.cumulative_pause_seconds = &i
	m.addcumulative_pause_seconds = nil
}

// CumulativePauseSeconds returns the value of the "cumulative_pause_seconds" field in the mutation.
func (m *ActiveSessionMutation) CumulativePauseSeconds() (r int, exists bool) {
	v := m.cumulative_pause_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldCumulativePauseSeconds returns the old "cumulative_pause_seconds" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldCumulativePauseSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCumulativePauseSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCumulativePauseSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCumulativePauseSeconds: %w", err)
	}
	return oldValue.CumulativePauseSeconds, nil
}

// AddCumulativePauseSeconds adds i to the "cumulative_pause_seconds" field.
func (m *ActiveSessionMutation) AddCumulativePauseSeconds(i int) {
	if m.addcumulative_pause_seconds != nil {
		*m.addcumulative_pause_seconds += i
	} else {
		m.addcumulative_pause_seconds = &i
	}
}

// AddedCumulativePauseSeconds returns the value that was added to the "cumulative_pause_seconds" field in this mutation.
func (m *ActiveSessionMutation) AddedCumulativePauseSeconds() (r int, exists bool) {
	v := m.addcumulative_pause_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetCumulativePauseSeconds resets all changes to the "cumulative_pause_seconds" field.
func (m *ActiveSessionMutation) ResetCumulativePauseSeconds() {
	m.cumulative_pause_seconds = nil
	m.addcumulative_pause_seconds = nil
}

// SetPauseStartedAt sets the "pause_started_at" field.
func (m *ActiveSessionMutation) SetPauseStartedAt(t time.Time) {
	m.pause_started_at = &t
}

// PauseStartedAt returns the value of the "pause_started_at" field in the mutation.
func (m *ActiveSessionMutation) PauseStartedAt() (r time.Time, exists bool) {
	v := m.pause_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseStartedAt returns the old "pause_started_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldPauseStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseStartedAt: %w", err)
	}
	return oldValue.PauseStartedAt, nil
}

// ClearPauseStartedAt clears the value of the "pause_started_at" field.
func (m *ActiveSessionMutation) ClearPauseStartedAt() {
	m.pause_started_at = nil
	m.clearedFields[activesession.FieldPauseStartedAt] = struct{}{}
}

// PauseStartedAtCleared returns if the "pause_started_at" field was cleared in this mutation.
func (m *ActiveSessionMutation) PauseStartedAtCleared() bool {
	_, ok := m.clearedFields[activesession.FieldPauseStartedAt]
	return ok
}

// ResetPauseStartedAt resets all changes to the "pause_started_at" field.
func (m *ActiveSessionMutation) ResetPauseStartedAt() {
	m.pause_started_at = nil
	delete(m.clearedFields, activesession.FieldPauseStartedAt)
}

// SetPauseCount sets the "pause_count" field.
func (m *ActiveSessionMutation) SetPauseCount(i int) {
	m.pause_count = &i
	m.addpause_count = nil
}

// PauseCount returns the value of the "pause_count" field in the mutation.
func (m *ActiveSessionMutation) PauseCount() (r int, exists bool) {
	v := m.pause_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseCount returns the old "pause_count" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldPauseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseCount: %w", err)
	}
	return oldValue.PauseCount, nil
}

// AddPauseCount adds i to the "pause_count" field.
func (m *ActiveSessionMutation) AddPauseCount(i int) {
	if m.addpause_count != nil {
		*m.addpause_count += i
	} else {
		m.addpause_count = &i
	}
}

// AddedPauseCount returns the value that was added to the "pause_count" field in this mutation.
func (m *ActiveSessionMutation) AddedPauseCount() (r int, exists bool) {
	v := m.addpause_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPauseCount resets all changes to the "pause_count" field.
func (m *ActiveSessionMutation) ResetPauseCount() {
	m.pause_count = nil
	m.addpause_count = nil
}

// SetElapsedSnapshotSeconds sets the "elapsed_snapshot_seconds" field.
func (m *ActiveSessionMutation) SetElapsedSnapshotSeconds(i int) {
	m.elapsed_snapshot_seconds = &i
	m.addelapsed_snapshot_seconds = nil
}

// ElapsedSnapshotSeconds returns the value of the "elapsed_snapshot_seconds" field in the mutation.
func (m *ActiveSessionMutation) ElapsedSnapshotSeconds() (r int, exists bool) {
	v := m.elapsed_snapshot_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedSnapshotSeconds returns the old "elapsed_snapshot_seconds" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldElapsedSnapshotSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedSnapshotSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedSnapshotSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedSnapshotSeconds: %w", err)
	}
	return oldValue.ElapsedSnapshotSeconds, nil
}

// AddElapsedSnapshotSeconds adds i to the "elapsed_snapshot_seconds" field.
func (m *ActiveSessionMutation) AddElapsedSnapshotSeconds(i int) {
	if m.addelapsed_snapshot_seconds != nil {
		*m.addelapsed_snapshot_seconds += i
	} else {
		m.addelapsed_snapshot_seconds = &i
	}
}

// AddedElapsedSnapshotSeconds returns the value that was added to the "elapsed_snapshot_seconds" field in this mutation.
func (m *ActiveSessionMutation) AddedElapsedSnapshotSeconds() (r int, exists bool) {
	v := m.addelapsed_snapshot_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedSnapshotSeconds resets all changes to the "elapsed_snapshot_seconds" field.
func (m *ActiveSessionMutation) ResetElapsedSnapshotSeconds() {
	m.elapsed_snapshot_seconds = nil
	m.addelapsed_snapshot_seconds = nil
}

// SetGoalReached sets the "goal_reached" field.
func (m *ActiveSessionMutation) SetGoalReached(b bool) {
	m.goal_reached = &b
}

// GoalReached returns the value of the "goal_reached" field in the mutation.
func (m *ActiveSessionMutation) GoalReached() (r bool, exists bool) {
	v := m.goal_reached
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalReached returns the old "goal_reached" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldGoalReached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalReached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalReached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalReached: %w", err)
	}
	return oldValue.GoalReached, nil
}

// ResetGoalReached resets all changes to the "goal_reached" field.
func (m *ActiveSessionMutation) ResetGoalReached() {
	m.goal_reached = nil
}

// SetWasAgitated sets the "was_agitated" field.
func (m *ActiveSessionMutation) SetWasAgitated(b bool) {
	m.was_agitated = &b
}

// WasAgitated returns the value of the "was_agitated" field in the mutation.
func (m *ActiveSessionMutation) WasAgitated() (r bool, exists bool) {
	v := m.was_agitated
	if v == nil {
		return
	}
	return *v, true
}

// OldWasAgitated returns the old "was_agitated" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldWasAgitated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasAgitated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasAgitated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasAgitated: %w", err)
	}
	return oldValue.WasAgitated, nil
}

// ResetWasAgitated resets all changes to the "was_agitated" field.
func (m *ActiveSessionMutation) ResetWasAgitated() {
	m.was_agitated = nil
}

// SetReported sets the "reported" field.
func (m *ActiveSessionMutation) SetReported(b bool) {
	m.reported = &b
}

// Reported returns the value of the "reported" field in the mutation.
func (m *ActiveSessionMutation) Reported() (r bool, exists bool) {
	v := m.reported
	if v == nil {
		return
	}
	return *v, true
}

// OldReported returns the old "reported" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldReported(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReported is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReported requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReported: %w", err)
	}
	return oldValue.Reported, nil
}

// ResetReported resets all changes to the "reported" field.
func (m *ActiveSessionMutation) ResetReported() {
	m.reported = nil
}

// SetMarkerEnded sets the "marker_ended" field.
func (m *ActiveSessionMutation) SetMarkerEnded(b bool) {
	m.marker_ended = &b
}

// MarkerEnded returns the value of the "marker_ended" field in the mutation.
func (m *ActiveSessionMutation) MarkerEnded() (r bool, exists bool) {
	v := m.marker_ended
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkerEnded returns the old "marker_ended" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldMarkerEnded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkerEnded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkerEnded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkerEnded: %w", err)
	}
	return oldValue.MarkerEnded, nil
}

// ResetMarkerEnded resets all changes to the "marker_ended" field.
func (m *ActiveSessionMutation) ResetMarkerEnded() {
	m.marker_ended = nil
}

// SetSuspectedInterruptionAt sets the "suspected_interruption_at" field.
func (m *ActiveSessionMutation) SetSuspectedInterruptionAt(t time.Time) {
	m.suspected_interruption_at = &t
}

// SuspectedInterruptionAt returns the value of the "suspected_interruption_at" field in the mutation.
func (m *ActiveSessionMutation) SuspectedInterruptionAt() (r time.Time, exists bool) {
	v := m.suspected_interruption_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspectedInterruptionAt returns the old "suspected_interruption_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldSuspectedInterruptionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspectedInterruptionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspectedInterruptionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspectedInterruptionAt: %w", err)
	}
	return oldValue.SuspectedInterruptionAt, nil
}

// ClearSuspectedInterruptionAt clears the value of the "suspected_interruption_at" field.
func (m *ActiveSessionMutation) ClearSuspectedInterruptionAt() {
	m.suspected_interruption_at = nil
	m.clearedFields[activesession.FieldSuspectedInterruptionAt] = struct{}{}
}

// SuspectedInterruptionAtCleared returns if the "suspected_interruption_at" field was cleared in this mutation.
func (m *ActiveSessionMutation) SuspectedInterruptionAtCleared() bool {
	_, ok := m.clearedFields[activesession.FieldSuspectedInterruptionAt]
	return ok
}

// ResetSuspectedInterruptionAt resets all changes to the "suspected_interruption_at" field.
func (m *ActiveSessionMutation) ResetSuspectedInterruptionAt() {
	m.suspected_interruption_at = nil
	delete(m.clearedFields, activesession.FieldSuspectedInterruptionAt)
}

// SetLastAutosaveAt sets the "last_autosave_at" field.
func (m *ActiveSessionMutation) SetLastAutosaveAt(t time.Time) {
	m.last_autosave_at = &t
}

// LastAutosaveAt returns the value of the "last_autosave_at" field in the mutation.
func (m *ActiveSessionMutation) LastAutosaveAt() (r time.Time, exists bool) {
	v := m.last_autosave_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAutosaveAt returns the old "last_autosave_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldLastAutosaveAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAutosaveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAutosaveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAutosaveAt: %w", err)
	}
	return oldValue.LastAutosaveAt, nil
}

// ClearLastAutosaveAt clears the value of the "last_autosave_at" field.
func (m *ActiveSessionMutation) ClearLastAutosaveAt() {
	m.last_autosave_at = nil
	m.clearedFields[activesession.FieldLastAutosaveAt] = struct{}{}
}

// LastAutosaveAtCleared returns if the "last_autosave_at" field was cleared in this mutation.
func (m *ActiveSessionMutation) LastAutosaveAtCleared() bool {
	_, ok := m.clearedFields[activesession.FieldLastAutosaveAt]
	return ok
}

// ResetLastAutosaveAt resets all changes to the "last_autosave_at" field.
func (m *ActiveSessionMutation) ResetLastAutosaveAt() {
	m.last_autosave_at = nil
	delete(m.clearedFields, activesession.FieldLastAutosaveAt)
}

// Where appends a list predicates to the ActiveSessionMutation builder.
func (m *ActiveSessionMutation) Where(ps ...predicate.ActiveSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActiveSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActiveSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActiveSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActiveSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActiveSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActiveSession).
func (m *ActiveSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActiveSessionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.singleton_id != nil {
		fields = append(fields, activesession.FieldSingletonID)
	}
	if m.session_id != nil {
		fields = append(fields, activesession.FieldSessionID)
	}
	if m.status != nil {
		fields = append(fields, activesession.FieldStatus)
	}
	if m.planned_seconds != nil {
		fields = append(fields, activesession.FieldPlannedSeconds)
	}
	if m.started_at != nil {
		fields = append(fields, activesession.FieldStartedAt)
	}
	if m.cumulative_pause_seconds != nil {
		fields = append(fields, activesession.FieldCumulativePauseSeconds)
	}
	if m.pause_started_at != nil {
		fields = append(fields, activesession.FieldPauseStartedAt)
	}
	if m.pause_count != nil {
		fields = append(fields, activesession.FieldPauseCount)
	}
	if m.elapsed_snapshot_seconds != nil {
		fields = append(fields, activesession.FieldElapsedSnapshotSeconds)
	}
	if m.goal_reached != nil {
		fields = append(fields, activesession.FieldGoalReached)
	}
	if m.was_agitated != nil {
		fields = append(fields, activesession.FieldWasAgitated)
	}
	if m.reported != nil {
		fields = append(fields, activesession.FieldReported)
	}
	if m.marker_ended != nil {
		fields = append(fields, activesession.FieldMarkerEnded)
	}
	if m.suspected_interruption_at != nil {
		fields = append(fields, activesession.FieldSuspectedInterruptionAt)
	}
	if m.last_autosave_at != nil {
		fields = append(fields, activesession.FieldLastAutosaveAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActiveSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activesession.FieldSingletonID:
		return m.SingletonID()
	case activesession.FieldSessionID:
		return m.SessionID()
	case activesession.FieldStatus:
		return m.Status()
	case activesession.FieldPlannedSeconds:
		return m.PlannedSeconds()
	case activesession.FieldStartedAt:
		return m.StartedAt()
	case activesession.FieldCumulativePauseSeconds:
		return m.CumulativePauseSeconds()
	case activesession.FieldPauseStartedAt:
		return m.PauseStartedAt()
	case activesession.FieldPauseCount:
		return m.PauseCount()
	case activesession.FieldElapsedSnapshotSeconds:
		return m.ElapsedSnapshotSeconds()
	case activesession.FieldGoalReached:
		return m.GoalReached()
	case activesession.FieldWasAgitated:
		return m.WasAgitated()
	case activesession.FieldReported:
		return m.Reported()
	case activesession.FieldMarkerEnded:
		return m.MarkerEnded()
	case activesession.FieldSuspectedInterruptionAt:
		return m.SuspectedInterruptionAt()
	case activesession.FieldLastAutosaveAt:
		return m.LastAutosaveAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActiveSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activesession.FieldSingletonID:
		return m.OldSingletonID(ctx)
	case activesession.FieldSessionID:
		return m.OldSessionID(ctx)
	case activesession.FieldStatus:
		return m.OldStatus(ctx)
	case activesession.FieldPlannedSeconds:
		return m.OldPlannedSeconds(ctx)
	case activesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case activesession.FieldCumulativePauseSeconds:
		return m.OldCumulativePauseSeconds(ctx)
	case activesession.FieldPauseStartedAt:
		return m.OldPauseStartedAt(ctx)
	case activesession.FieldPauseCount:
		return m.OldPauseCount(ctx)
	case activesession.FieldElapsedSnapshotSeconds:
		return m.OldElapsedSnapshotSeconds(ctx)
	case activesession.FieldGoalReached:
		return m.OldGoalReached(ctx)
	case activesession.FieldWasAgitated:
		return m.OldWasAgitated(ctx)
	case activesession.FieldReported:
		return m.OldReported(ctx)
	case activesession.FieldMarkerEnded:
		return m.OldMarkerEnded(ctx)
	case activesession.FieldSuspectedInterruptionAt:
		return m.OldSuspectedInterruptionAt(ctx)
	case activesession.FieldLastAutosaveAt:
		return m.OldLastAutosaveAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActiveSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activesession.FieldSingletonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSingletonID(v)
		return nil
	case activesession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case activesession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case activesession.FieldPlannedSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedSeconds(v)
		return nil
	case activesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case activesession.FieldCumulativePauseSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCumulativePauseSeconds(v)
		return nil
	case activesession.FieldPauseStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseStartedAt(v)
		return nil
	case activesession.FieldPauseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseCount(v)
		return nil
	case activesession.FieldElapsedSnapshotSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedSnapshotSeconds(v)
		return nil
	case activesession.FieldGoalReached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalReached(v)
		return nil
	case activesession.FieldWasAgitated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasAgitated(v)
		return nil
	case activesession.FieldReported:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReported(v)
		return nil
	case activesession.FieldMarkerEnded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkerEnded(v)
		return nil
	case activesession.FieldSuspectedInterruptionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspectedInterruptionAt(v)
		return nil
	case activesession.FieldLastAutosaveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAutosaveAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActiveSessionMutation) AddedFields() []string {
	var fields []string
	if m.addsingleton_id != nil {
		fields = append(fields, activesession.FieldSingletonID)
	}
	if m.addplanned_seconds != nil {
		fields = append(fields, activesession.FieldPlannedSeconds)
	}
	if m.addcumulative_pause_seconds != nil {
		fields = append(fields, activesession.FieldCumulativePauseSeconds)
	}
	if m.addpause_count != nil {
		fields = append(fields, activesession.FieldPauseCount)
	}
	if m.addelapsed_snapshot_seconds != nil {
		fields = append(fields, activesession.FieldElapsedSnapshotSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActiveSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activesession.FieldSingletonID:
		return m.AddedSingletonID()
	case activesession.FieldPlannedSeconds:
		return m.AddedPlannedSeconds()
	case activesession.FieldCumulativePauseSeconds:
		return m.AddedCumulativePauseSeconds()
	case activesession.FieldPauseCount:
		return m.AddedPauseCount()
	case activesession.FieldElapsedSnapshotSeconds:
		return m.AddedElapsedSnapshotSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activesession.FieldSingletonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSingletonID(v)
		return nil
	case activesession.FieldPlannedSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedSeconds(v)
		return nil
	case activesession.FieldCumulativePauseSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCumulativePauseSeconds(v)
		return nil
	case activesession.FieldPauseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPauseCount(v)
		return nil
	case activesession.FieldElapsedSnapshotSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedSnapshotSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActiveSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activesession.FieldStartedAt) {
		fields = append(fields, activesession.FieldStartedAt)
	}
	if m.FieldCleared(activesession.FieldPauseStartedAt) {
		fields = append(fields, activesession.FieldPauseStartedAt)
	}
	if m.FieldCleared(activesession.FieldSuspectedInterruptionAt) {
		fields = append(fields, activesession.FieldSuspectedInterruptionAt)
	}
	if m.FieldCleared(activesession.FieldLastAutosaveAt) {
		fields = append(fields, activesession.FieldLastAutosaveAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActiveSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActiveSessionMutation) ClearField(name string) error {
	switch name {
	case activesession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case activesession.FieldPauseStartedAt:
		m.ClearPauseStartedAt()
		return nil
	case activesession.FieldSuspectedInterruptionAt:
		m.ClearSuspectedInterruptionAt()
		return nil
	case activesession.FieldLastAutosaveAt:
		m.ClearLastAutosaveAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActiveSessionMutation) ResetField(name string) error {
	switch name {
	case activesession.FieldSingletonID:
		m.ResetSingletonID()
		return nil
	case activesession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case activesession.FieldStatus:
		m.ResetStatus()
		return nil
	case activesession.FieldPlannedSeconds:
		m.ResetPlannedSeconds()
		return nil
	case activesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case activesession.FieldCumulativePauseSeconds:
		m.ResetCumulativePauseSeconds()
		return nil
	case activesession.FieldPauseStartedAt:
		m.ResetPauseStartedAt()
		return nil
	case activesession.FieldPauseCount:
		m.ResetPauseCount()
		return nil
	case activesession.FieldElapsedSnapshotSeconds:
		m.ResetElapsedSnapshotSeconds()
		return nil
	case activesession.FieldGoalReached:
		m.ResetGoalReached()
		return nil
	case activesession.FieldWasAgitated:
		m.ResetWasAgitated()
		return nil
	case activesession.FieldReported:
		m.ResetReported()
		return nil
	case activesession.FieldMarkerEnded:
		m.ResetMarkerEnded()
		return nil
	case activesession.FieldSuspectedInterruptionAt:
		m.ResetSuspectedInterruptionAt()
		return nil
	case activesession.FieldLastAutosaveAt:
		m.ResetLastAutosaveAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActiveSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActiveSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActiveSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActiveSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActiveSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActiveSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActiveSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActiveSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActiveSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActiveSession edge %s", name)
}

// BehaviorDayMutation represents an operation that mutates the BehaviorDay nodes in the graph.
type BehaviorDayMutation struct {
	config
	op               Op
	typ              string
	id               *int
	date             *string
	present          *bool
	focused          *bool
	met_goal         *bool
	over_goal        *bool
	focus_minutes    *int
	addfocus_minutes *int
	streak_counted   *bool
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*BehaviorDay, error)
	predicates       []predicate.BehaviorDay
}

var _ ent.Mutation = (*BehaviorDayMutation)(nil)

// behaviordayOption allows management of the mutation configuration using functional options.
type behaviordayOption func(*BehaviorDayMutation)

// newBehaviorDayMutation creates new mutation for the BehaviorDay entity.
func newBehaviorDayMutation(c config, op Op, opts ...behaviordayOption) *BehaviorDayMutation {
	m := &BehaviorDayMutation{
		config:        c,
		op:            op,
		typ:           TypeBehaviorDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBehaviorDayID sets the ID field of the mutation.
func withBehaviorDayID(id int) behaviordayOption {
	return func(m *BehaviorDayMutation) {
		var (
			err   error
			once  sync.Once
			value *BehaviorDay
		)
		m.oldValue = func(ctx context.Context) (*BehaviorDay, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BehaviorDay.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBehaviorDay sets the old BehaviorDay of the mutation.
func withBehaviorDay(node *BehaviorDay) behaviordayOption {
	return func(m *BehaviorDayMutation) {
		m.oldValue = func(context.Context) (*BehaviorDay, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BehaviorDayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BehaviorDayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BehaviorDayMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BehaviorDayMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BehaviorDay.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDate sets the "date" field.
func (m *BehaviorDayMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *BehaviorDayMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *BehaviorDayMutation) ResetDate() {
	m.date = nil
}

// SetPresent sets the "present" field.
func (m *BehaviorDayMutation) SetPresent(b bool) {
	m.present = &b
}

// Present returns the value of the "present" field in the mutation.
func (m *BehaviorDayMutation) Present() (r bool, exists bool) {
	v := m.present
	if v == nil {
		return
	}
	return *v, true
}

// OldPresent returns the old "present" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldPresent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresent: %w", err)
	}
	return oldValue.Present, nil
}

// ResetPresent resets all changes to the "present" field.
func (m *BehaviorDayMutation) ResetPresent() {
	m.present = nil
}

// SetFocused sets the "focused" field.
func (m *BehaviorDayMutation) SetFocused(b bool) {
	m.focused = &b
}

// Focused returns the value of the "focused" field in the mutation.
func (m *BehaviorDayMutation) Focused() (r bool, exists bool) {
	v := m.focused
	if v == nil {
		return
	}
	return *v, true
}

// OldFocused returns the old "focused" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldFocused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocused: %w", err)
	}
	return oldValue.Focused, nil
}

// ResetFocused resets all changes to the "focused" field.
func (m *BehaviorDayMutation) ResetFocused() {
	m.focused = nil
}

// SetMetGoal sets the "met_goal" field.
func (m *BehaviorDayMutation) SetMetGoal(b bool) {
	m.met_goal = &b
}

// MetGoal returns the value of the "met_goal" field in the mutation.
func (m *BehaviorDayMutation) MetGoal() (r bool, exists bool) {
	v := m.met_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldMetGoal returns the old "met_goal" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldMetGoal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetGoal: %w", err)
	}
	return oldValue.MetGoal, nil
}

// ResetMetGoal resets all changes to the "met_goal" field.
func (m *BehaviorDayMutation) ResetMetGoal() {
	m.met_goal = nil
}

// SetOverGoal sets the "over_goal" field.
func (m *BehaviorDayMutation) SetOverGoal(b bool) {
	m.over_goal = &b
}

// OverGoal returns the value of the "over_goal" field in the mutation.
func (m *BehaviorDayMutation) OverGoal() (r bool, exists bool) {
	v := m.over_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldOverGoal returns the old "over_goal" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldOverGoal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverGoal: %w", err)
	}
	return oldValue.OverGoal, nil
}

// ResetOverGoal resets all changes to the "over_goal" field.
func (m *BehaviorDayMutation) ResetOverGoal() {
	m.over_goal = nil
}

// SetFocusMinutes sets the "focus_minutes" field.
func (m *BehaviorDayMutation) SetFocusMinutes(i int) {
	m.focus_minutes = &i
	m.addfocus_minutes = nil
}

// FocusMinutes returns the value of the "focus_minutes" field in the mutation.
func (m *BehaviorDayMutation) FocusMinutes() (r int, exists bool) {
	v := m.focus_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusMinutes returns the old "focus_minutes" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldFocusMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusMinutes: %w", err)
	}
	return oldValue.FocusMinutes, nil
}

// AddFocusMinutes adds i to the "focus_minutes" field.
func (m *BehaviorDayMutation) AddFocusMinutes(i int) {
	if m.addfocus_minutes != nil {
		*m.addfocus_minutes += i
	} else {
		m.addfocus_minutes = &i
	}
}

// AddedFocusMinutes returns the value that was added to the "focus_minutes" field in this mutation.
func (m *BehaviorDayMutation) AddedFocusMinutes() (r int, exists bool) {
	v := m.addfocus_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetFocusMinutes resets all changes to the "focus_minutes" field.
func (m *BehaviorDayMutation) ResetFocusMinutes() {
	m.focus_minutes = nil
	m.addfocus_minutes = nil
}

// SetStreakCounted sets the "streak_counted" field.
func (m *BehaviorDayMutation) SetStreakCounted(b bool) {
	m.streak_counted = &b
}

// StreakCounted returns the value of the "streak_counted" field in the mutation.
func (m *BehaviorDayMutation) StreakCounted() (r bool, exists bool) {
	v := m.streak_counted
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakCounted returns the old "streak_counted" field's value of the BehaviorDay entity.
// If the BehaviorDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehaviorDayMutation) OldStreakCounted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakCounted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakCounted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakCounted: %w", err)
	}
	return oldValue.StreakCounted, nil
}

// ResetStreakCounted resets all changes to the "streak_counted" field.
func (m *BehaviorDayMutation) ResetStreakCounted() {
	m.streak_counted = nil
}

// Where appends a list predicates to the BehaviorDayMutation builder.
func (m *BehaviorDayMutation) Where(ps ...predicate.BehaviorDay) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BehaviorDayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BehaviorDayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BehaviorDay, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BehaviorDayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BehaviorDayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BehaviorDay).
func (m *BehaviorDayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BehaviorDayMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.date != nil {
		fields = append(fields, behaviorday.FieldDate)
	}
	if m.present != nil {
		fields = append(fields, behaviorday.FieldPresent)
	}
	if m.focused != nil {
		fields = append(fields, behaviorday.FieldFocused)
	}
	if m.met_goal != nil {
		fields = append(fields, behaviorday.FieldMetGoal)
	}
	if m.over_goal != nil {
		fields = append(fields, behaviorday.FieldOverGoal)
	}
	if m.focus_minutes != nil {
		fields = append(fields, behaviorday.FieldFocusMinutes)
	}
	if m.streak_counted != nil {
		fields = append(fields, behaviorday.FieldStreakCounted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BehaviorDayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case behaviorday.FieldDate:
		return m.Date()
	case behaviorday.FieldPresent:
		return m.Present()
	case behaviorday.FieldFocused:
		return m.Focused()
	case behaviorday.FieldMetGoal:
		return m.MetGoal()
	case behaviorday.FieldOverGoal:
		return m.OverGoal()
	case behaviorday.FieldFocusMinutes:
		return m.FocusMinutes()
	case behaviorday.FieldStreakCounted:
		return m.StreakCounted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BehaviorDayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case behaviorday.FieldDate:
		return m.OldDate(ctx)
	case behaviorday.FieldPresent:
		return m.OldPresent(ctx)
	case behaviorday.FieldFocused:
		return m.OldFocused(ctx)
	case behaviorday.FieldMetGoal:
		return m.OldMetGoal(ctx)
	case behaviorday.FieldOverGoal:
		return m.OldOverGoal(ctx)
	case behaviorday.FieldFocusMinutes:
		return m.OldFocusMinutes(ctx)
	case behaviorday.FieldStreakCounted:
		return m.OldStreakCounted(ctx)
	}
	return nil, fmt.Errorf("unknown BehaviorDay field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehaviorDayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case behaviorday.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case behaviorday.FieldPresent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresent(v)
		return nil
	case behaviorday.FieldFocused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocused(v)
		return nil
	case behaviorday.FieldMetGoal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetGoal(v)
		return nil
	case behaviorday.FieldOverGoal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverGoal(v)
		return nil
	case behaviorday.FieldFocusMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusMinutes(v)
		return nil
	case behaviorday.FieldStreakCounted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakCounted(v)
		return nil
	}
	return fmt.Errorf("unknown BehaviorDay field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BehaviorDayMutation) AddedFields() []string {
	var fields []string
	if m.addfocus_minutes != nil {
		fields = append(fields, behaviorday.FieldFocusMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BehaviorDayMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case behaviorday.FieldFocusMinutes:
		return m.AddedFocusMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehaviorDayMutation) AddField(name string, value ent.Value) error {
	switch name {
	case behaviorday.FieldFocusMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFocusMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown BehaviorDay numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BehaviorDayMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BehaviorDayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BehaviorDayMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BehaviorDay nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BehaviorDayMutation) ResetField(name string) error {
	switch name {
	case behaviorday.FieldDate:
		m.ResetDate()
		return nil
	case behaviorday.FieldPresent:
		m.ResetPresent()
		return nil
	case behaviorday.FieldFocused:
		m.ResetFocused()
		return nil
	case behaviorday.FieldMetGoal:
		m.ResetMetGoal()
		return nil
	case behaviorday.FieldOverGoal:
		m.ResetOverGoal()
		return nil
	case behaviorday.FieldFocusMinutes:
		m.ResetFocusMinutes()
		return nil
	case behaviorday.FieldStreakCounted:
		m.ResetStreakCounted()
		return nil
	}
	return fmt.Errorf("unknown BehaviorDay field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BehaviorDayMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BehaviorDayMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BehaviorDayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BehaviorDayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BehaviorDayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BehaviorDayMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BehaviorDayMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BehaviorDay unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BehaviorDayMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BehaviorDay edge %s", name)
}

// FlowStateMutation represents an operation that mutates the FlowState nodes in the graph.
type FlowStateMutation struct {
	config
	op              Op
	typ             string
	id              *int
	singleton_id    *int
	addsingleton_id *int
	data            *map[string]interface{}
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*FlowState, error)
	predicates      []predicate.FlowState
}

var _ ent.Mutation = (*FlowStateMutation)(nil)

// flowstateOption allows management of the mutation configuration using functional options.
type flowstateOption func(*FlowStateMutation)

// newFlowStateMutation creates new mutation for the FlowState entity.
func newFlowStateMutation(c config, op Op, opts ...flowstateOption) *FlowStateMutation {
	m := &FlowStateMutation{
		config:        c,
		op:            op,
		typ:           TypeFlowState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowStateID sets the ID field of the mutation.
func withFlowStateID(id int) flowstateOption {
	return func(m *FlowStateMutation) {
		var (
			err   error
			once  sync.Once
			value *FlowState
		)
		m.oldValue = func(ctx context.Context) (*FlowState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlowState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlowState sets the old FlowState of the mutation.
func withFlowState(node *FlowState) flowstateOption {
	return func(m *FlowStateMutation) {
		m.oldValue = func(context.Context) (*FlowState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlowState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSingletonID sets the "singleton_id" field.
func (m *FlowStateMutation) SetSingletonID(i int) {
	m.singleton_id = &i
	m.addsingleton_id = nil
}

// SingletonID returns the value of the "singleton_id" field in the mutation.
func (m *FlowStateMutation) SingletonID() (r int, exists bool) {
	v := m.singleton_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSingletonID returns the old "singleton_id" field's value of the FlowState entity.
// If the FlowState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStateMutation) OldSingletonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSingletonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSingletonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSingletonID: %w", err)
	}
	return oldValue.SingletonID, nil
}

// AddSingletonID adds i to the "singleton_id" field.
func (m *FlowStateMutation) AddSingletonID(i int) {
	if m.addsingleton_id != nil {
		*m.addsingleton_id += i
	} else {
		m.addsingleton_id = &i
	}
}

// AddedSingletonID returns the value that was added to the "singleton_id" field in this mutation.
func (m *FlowStateMutation) AddedSingletonID() (r int, exists bool) {
	v := m.addsingleton_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSingletonID resets all changes to the "singleton_id" field.
func (m *FlowStateMutation) ResetSingletonID() {
	m.singleton_id = nil
	m.addsingleton_id = nil
}

// SetData sets the "data" field.
func (m *FlowStateMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *FlowStateMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the FlowState entity.
// If the FlowState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStateMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *FlowStateMutation) ResetData() {
	m.data = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FlowStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FlowStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FlowState entity.
// If the FlowState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FlowStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FlowStateMutation builder.
func (m *FlowStateMutation) Where(ps ...predicate.FlowState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlowState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlowState).
func (m *FlowStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowStateMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.singleton_id != nil {
		fields = append(fields, flowstate.FieldSingletonID)
	}
	if m.data != nil {
		fields = append(fields, flowstate.FieldData)
	}
	if m.updated_at != nil {
		fields = append(fields, flowstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flowstate.FieldSingletonID:
		return m.SingletonID()
	case flowstate.FieldData:
		return m.Data()
	case flowstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flowstate.FieldSingletonID:
		return m.OldSingletonID(ctx)
	case flowstate.FieldData:
		return m.OldData(ctx)
	case flowstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FlowState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flowstate.FieldSingletonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSingletonID(v)
		return nil
	case flowstate.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case flowstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FlowState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowStateMutation) AddedFields() []string {
	var fields []string
	if m.addsingleton_id != nil {
		fields = append(fields, flowstate.FieldSingletonID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flowstate.FieldSingletonID:
		return m.AddedSingletonID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flowstate.FieldSingletonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSingletonID(v)
		return nil
	}
	return fmt.Errorf("unknown FlowState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FlowState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowStateMutation) ResetField(name string) error {
	switch name {
	case flowstate.FieldSingletonID:
		m.ResetSingletonID()
		return nil
	case flowstate.FieldData:
		m.ResetData()
		return nil
	case flowstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FlowState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FlowState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FlowState edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	session_id         *string
	minutes            *int
	addminutes         *int
	planned_minutes    *int
	addplanned_minutes *int
	rating             *float64
	addrating          *float64
	completed          *bool
	goal_reached       *bool
	was_agitated       *bool
	started_at         *time.Time
	closed_on          *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SessionEvent, error)
	predicates         []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMinutes sets the "minutes" field.
func (m *SessionEventMutation) SetMinutes(i int) {
	m.minutes = &i
	m.addminutes = nil
}

// Minutes returns the value of the "minutes" field in the mutation.
func (m *SessionEventMutation) Minutes() (r int, exists bool) {
	v := m.minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldMinutes returns the old "minutes" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinutes: %w", err)
	}
	return oldValue.Minutes, nil
}

// AddMinutes adds i to the "minutes" field.
func (m *SessionEventMutation) AddMinutes(i int) {
	if m.addminutes != nil {
		*m.addminutes += i
	} else {
		m.addminutes = &i
	}
}

// AddedMinutes returns the value that was added to the "minutes" field in this mutation.
func (m *SessionEventMutation) AddedMinutes() (r int, exists bool) {
	v := m.addminutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinutes resets all changes to the "minutes" field.
func (m *SessionEventMutation) ResetMinutes() {
	m.minutes = nil
	m.addminutes = nil
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (m *SessionEventMutation) SetPlannedMinutes(i int) {
	m.planned_minutes = &i
	m.addplanned_minutes = nil
}

// PlannedMinutes returns the value of the "planned_minutes" field in the mutation.
func (m *SessionEventMutation) PlannedMinutes() (r int, exists bool) {
	v := m.planned_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedMinutes returns the old "planned_minutes" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPlannedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedMinutes: %w", err)
	}
	return oldValue.PlannedMinutes, nil
}

// AddPlannedMinutes adds i to the "planned_minutes" field.
func (m *SessionEventMutation) AddPlannedMinutes(i int) {
	if m.addplanned_minutes != nil {
		*m.addplanned_minutes += i
	} else {
		m.addplanned_minutes = &i
	}
}

// AddedPlannedMinutes returns the value that was added to the "planned_minutes" field in this mutation.
func (m *SessionEventMutation) AddedPlannedMinutes() (r int, exists bool) {
	v := m.addplanned_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedMinutes resets all changes to the "planned_minutes" field.
func (m *SessionEventMutation) ResetPlannedMinutes() {
	m.planned_minutes = nil
	m.addplanned_minutes = nil
}

// SetRating sets the "rating" field.
func (m *SessionEventMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *SessionEventMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldRating(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *SessionEventMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *SessionEventMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *SessionEventMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[sessionevent.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *SessionEventMutation) RatingCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *SessionEventMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, sessionevent.FieldRating)
}

// SetCompleted sets the "completed" field.
func (m *SessionEventMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *SessionEventMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *SessionEventMutation) ResetCompleted() {
	m.completed = nil
}

// SetGoalReached sets the "goal_reached" field.
func (m *SessionEventMutation) SetGoalReached(b bool) {
	m.goal_reached = &b
}

// GoalReached returns the value of the "goal_reached" field in the mutation.
func (m *SessionEventMutation) GoalReached() (r bool, exists bool) {
	v := m.goal_reached
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalReached returns the old "goal_reached" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldGoalReached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalReached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalReached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalReached: %w", err)
	}
	return oldValue.GoalReached, nil
}

// ResetGoalReached resets all changes to the "goal_reached" field.
func (m *SessionEventMutation) ResetGoalReached() {
	m.goal_reached = nil
}

// SetWasAgitated sets the "was_agitated" field.
func (m *SessionEventMutation) SetWasAgitated(b bool) {
	m.was_agitated = &b
}

// WasAgitated returns the value of the "was_agitated" field in the mutation.
func (m *SessionEventMutation) WasAgitated() (r bool, exists bool) {
	v := m.was_agitated
	if v == nil {
		return
	}
	return *v, true
}

// OldWasAgitated returns the old "was_agitated" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldWasAgitated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasAgitated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasAgitated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasAgitated: %w", err)
	}
	return oldValue.WasAgitated, nil
}

// ResetWasAgitated resets all changes to the "was_agitated" field.
func (m *SessionEventMutation) ResetWasAgitated() {
	m.was_agitated = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionEventMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionEventMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionEventMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetClosedOn sets the "closed_on" field.
func (m *SessionEventMutation) SetClosedOn(s string) {
	m.closed_on = &s
}

// ClosedOn returns the value of the "closed_on" field in the mutation.
func (m *SessionEventMutation) ClosedOn() (r string, exists bool) {
	v := m.closed_on
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedOn returns the old "closed_on" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldClosedOn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedOn: %w", err)
	}
	return oldValue.ClosedOn, nil
}

// ResetClosedOn resets all changes to the "closed_on" field.
func (m *SessionEventMutation) ResetClosedOn() {
	m.closed_on = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.minutes != nil {
		fields = append(fields, sessionevent.FieldMinutes)
	}
	if m.planned_minutes != nil {
		fields = append(fields, sessionevent.FieldPlannedMinutes)
	}
	if m.rating != nil {
		fields = append(fields, sessionevent.FieldRating)
	}
	if m.completed != nil {
		fields = append(fields, sessionevent.FieldCompleted)
	}
	if m.goal_reached != nil {
		fields = append(fields, sessionevent.FieldGoalReached)
	}
	if m.was_agitated != nil {
		fields = append(fields, sessionevent.FieldWasAgitated)
	}
	if m.started_at != nil {
		fields = append(fields, sessionevent.FieldStartedAt)
	}
	if m.closed_on != nil {
		fields = append(fields, sessionevent.FieldClosedOn)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldMinutes:
		return m.Minutes()
	case sessionevent.FieldPlannedMinutes:
		return m.PlannedMinutes()
	case sessionevent.FieldRating:
		return m.Rating()
	case sessionevent.FieldCompleted:
		return m.Completed()
	case sessionevent.FieldGoalReached:
		return m.GoalReached()
	case sessionevent.FieldWasAgitated:
		return m.WasAgitated()
	case sessionevent.FieldStartedAt:
		return m.StartedAt()
	case sessionevent.FieldClosedOn:
		return m.ClosedOn()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldMinutes:
		return m.OldMinutes(ctx)
	case sessionevent.FieldPlannedMinutes:
		return m.OldPlannedMinutes(ctx)
	case sessionevent.FieldRating:
		return m.OldRating(ctx)
	case sessionevent.FieldCompleted:
		return m.OldCompleted(ctx)
	case sessionevent.FieldGoalReached:
		return m.OldGoalReached(ctx)
	case sessionevent.FieldWasAgitated:
		return m.OldWasAgitated(ctx)
	case sessionevent.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionevent.FieldClosedOn:
		return m.OldClosedOn(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinutes(v)
		return nil
	case sessionevent.FieldPlannedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedMinutes(v)
		return nil
	case sessionevent.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case sessionevent.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case sessionevent.FieldGoalReached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalReached(v)
		return nil
	case sessionevent.FieldWasAgitated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasAgitated(v)
		return nil
	case sessionevent.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionevent.FieldClosedOn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedOn(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addminutes != nil {
		fields = append(fields, sessionevent.FieldMinutes)
	}
	if m.addplanned_minutes != nil {
		fields = append(fields, sessionevent.FieldPlannedMinutes)
	}
	if m.addrating != nil {
		fields = append(fields, sessionevent.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldMinutes:
		return m.AddedMinutes()
	case sessionevent.FieldPlannedMinutes:
		return m.AddedPlannedMinutes()
	case sessionevent.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinutes(v)
		return nil
	case sessionevent.FieldPlannedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedMinutes(v)
		return nil
	case sessionevent.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldRating) {
		fields = append(fields, sessionevent.FieldRating)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldRating:
		m.ClearRating()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldMinutes:
		m.ResetMinutes()
		return nil
	case sessionevent.FieldPlannedMinutes:
		m.ResetPlannedMinutes()
		return nil
	case sessionevent.FieldRating:
		m.ResetRating()
		return nil
	case sessionevent.FieldCompleted:
		m.ResetCompleted()
		return nil
	case sessionevent.FieldGoalReached:
		m.ResetGoalReached()
		return nil
	case sessionevent.FieldWasAgitated:
		m.ResetWasAgitated()
		return nil
	case sessionevent.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionevent.FieldClosedOn:
		m.ResetClosedOn()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
