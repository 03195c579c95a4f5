// Code generated by ent, DO NOT EDIT.

package activesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldID, id))
}

// SingletonID applies equality check predicate on the "singleton_id" field. It's identical to SingletonIDEQ.
func SingletonID(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSingletonID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSessionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldStatus, v))
}

// PlannedSeconds applies equality check predicate on the "planned_seconds" field. It's identical to PlannedSecondsEQ.
func PlannedSeconds(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPlannedSeconds, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldStartedAt, v))
}

// CumulativePauseSeconds applies equality check predicate on the "cumulative_pause_seconds" field. It's identical to CumulativePauseSecondsEQ.
func CumulativePauseSeconds(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCumulativePauseSeconds, v))
}

// PauseStartedAt applies equality check predicate on the "pause_started_at" field. It's identical to PauseStartedAtEQ.
func PauseStartedAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPauseStartedAt, v))
}

// PauseCount applies equality check predicate on the "pause_count" field. It's identical to PauseCountEQ.
func PauseCount(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPauseCount, v))
}

// ElapsedSnapshotSeconds applies equality check predicate on the "elapsed_snapshot_seconds" field. It's identical to ElapsedSnapshotSecondsEQ.
func ElapsedSnapshotSeconds(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldElapsedSnapshotSeconds, v))
}

// GoalReached applies equality check predicate on the "goal_reached" field. It's identical to GoalReachedEQ.
func GoalReached(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldGoalReached, v))
}

// WasAgitated applies equality check predicate on the "was_agitated" field. It's identical to WasAgitatedEQ.
func WasAgitated(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldWasAgitated, v))
}

// Reported applies equality check predicate on the "reported" field. It's identical to ReportedEQ.
func Reported(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldReported, v))
}

// MarkerEnded applies equality check predicate on the "marker_ended" field. It's identical to MarkerEndedEQ.
func MarkerEnded(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldMarkerEnded, v))
}

// SuspectedInterruptionAt applies equality check predicate on the "suspected_interruption_at" field. It's identical to SuspectedInterruptionAtEQ.
func SuspectedInterruptionAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSuspectedInterruptionAt, v))
}

// LastAutosaveAt applies equality check predicate on the "last_autosave_at" field. It's identical to LastAutosaveAtEQ.
func LastAutosaveAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldLastAutosaveAt, v))
}

// SingletonIDEQ applies the EQ predicate on the "singleton_id" field.
func SingletonIDEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSingletonID, v))
}

// SingletonIDNEQ applies the NEQ predicate on the "singleton_id" field.
func SingletonIDNEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldSingletonID, v))
}

// SingletonIDIn applies the In predicate on the "singleton_id" field.
func SingletonIDIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldSingletonID, vs...))
}

// SingletonIDNotIn applies the NotIn predicate on the "singleton_id" field.
func SingletonIDNotIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldSingletonID, vs...))
}

// SingletonIDGT applies the GT predicate on the "singleton_id" field.
func SingletonIDGT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldSingletonID, v))
}

// SingletonIDGTE applies the GTE predicate on the "singleton_id" field.
func SingletonIDGTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldSingletonID, v))
}

// SingletonIDLT applies the LT predicate on the "singleton_id" field.
func SingletonIDLT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldSingletonID, v))
}

// SingletonIDLTE applies the LTE predicate on the "singleton_id" field.
func SingletonIDLTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldSingletonID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldStatus, v))
}

// PlannedSecondsEQ applies the EQ predicate on the "planned_seconds" field.
func PlannedSecondsEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPlannedSeconds, v))
}

// PlannedSecondsNEQ applies the NEQ predicate on the "planned_seconds" field.
func PlannedSecondsNEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldPlannedSeconds, v))
}

// PlannedSecondsIn applies the In predicate on the "planned_seconds" field.
func PlannedSecondsIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldPlannedSeconds, vs...))
}

// PlannedSecondsNotIn applies the NotIn predicate on the "planned_seconds" field.
func PlannedSecondsNotIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldPlannedSeconds, vs...))
}

// PlannedSecondsGT applies the GT predicate on the "planned_seconds" field.
func PlannedSecondsGT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldPlannedSeconds, v))
}

// PlannedSecondsGTE applies the GTE predicate on the "planned_seconds" field.
func PlannedSecondsGTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldPlannedSeconds, v))
}

// PlannedSecondsLT applies the LT predicate on the "planned_seconds" field.
func PlannedSecondsLT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldPlannedSeconds, v))
}

// PlannedSecondsLTE applies the LTE predicate on the "planned_seconds" field.
func PlannedSecondsLTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldPlannedSeconds, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotNull(FieldStartedAt))
}

// CumulativePauseSecondsEQ applies the EQ predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCumulativePauseSeconds, v))
}

// CumulativePauseSecondsNEQ applies the NEQ predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsNEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldCumulativePauseSeconds, v))
}

// CumulativePauseSecondsIn applies the In predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldCumulativePauseSeconds, vs...))
}

// CumulativePauseSecondsNotIn applies the NotIn predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsNotIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldCumulativePauseSeconds, vs...))
}

// CumulativePauseSecondsGT applies the GT predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsGT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldCumulativePauseSeconds, v))
}

// CumulativePauseSecondsGTE applies the GTE predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsGTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldCumulativePauseSeconds, v))
}

// CumulativePauseSecondsLT applies the LT predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsLT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldCumulativePauseSeconds, v))
}

// CumulativePauseSecondsLTE applies the LTE predicate on the "cumulative_pause_seconds" field.
func CumulativePauseSecondsLTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldCumulativePauseSeconds, v))
}

// PauseStartedAtEQ applies the EQ predicate on the "pause_started_at" field.
func PauseStartedAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPauseStartedAt, v))
}

// PauseStartedAtNEQ applies the NEQ predicate on the "pause_started_at" field.
func PauseStartedAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldPauseStartedAt, v))
}

// PauseStartedAtIn applies the In predicate on the "pause_started_at" field.
func PauseStartedAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldPauseStartedAt, vs...))
}

// PauseStartedAtNotIn applies the NotIn predicate on the "pause_started_at" field.
func PauseStartedAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldPauseStartedAt, vs...))
}

// PauseStartedAtGT applies the GT predicate on the "pause_started_at" field.
func PauseStartedAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldPauseStartedAt, v))
}

// PauseStartedAtGTE applies the GTE predicate on the "pause_started_at" field.
func PauseStartedAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldPauseStartedAt, v))
}

// PauseStartedAtLT applies the LT predicate on the "pause_started_at" field.
func PauseStartedAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldPauseStartedAt, v))
}

// PauseStartedAtLTE applies the LTE predicate on the "pause_started_at" field.
func PauseStartedAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldPauseStartedAt, v))
}

// PauseStartedAtIsNil applies the IsNil predicate on the "pause_started_at" field.
func PauseStartedAtIsNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIsNull(FieldPauseStartedAt))
}

// PauseStartedAtNotNil applies the NotNil predicate on the "pause_started_at" field.
func PauseStartedAtNotNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotNull(FieldPauseStartedAt))
}

// PauseCountEQ applies the EQ predicate on the "pause_count" field.
func PauseCountEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPauseCount, v))
}

// PauseCountNEQ applies the NEQ predicate on the "pause_count" field.
func PauseCountNEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldPauseCount, v))
}

// PauseCountIn applies the In predicate on the "pause_count" field.
func PauseCountIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldPauseCount, vs...))
}

// PauseCountNotIn applies the NotIn predicate on the "pause_count" field.
func PauseCountNotIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldPauseCount, vs...))
}

// PauseCountGT applies the GT predicate on the "pause_count" field.
func PauseCountGT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldPauseCount, v))
}

// PauseCountGTE applies the GTE predicate on the "pause_count" field.
func PauseCountGTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldPauseCount, v))
}

// PauseCountLT applies the LT predicate on the "pause_count" field.
func PauseCountLT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldPauseCount, v))
}

// PauseCountLTE applies the LTE predicate on the "pause_count" field.
func PauseCountLTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldPauseCount, v))
}

// ElapsedSnapshotSecondsEQ applies the EQ predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldElapsedSnapshotSeconds, v))
}

// ElapsedSnapshotSecondsNEQ applies the NEQ predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsNEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldElapsedSnapshotSeconds, v))
}

// ElapsedSnapshotSecondsIn applies the In predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldElapsedSnapshotSeconds, vs...))
}

// ElapsedSnapshotSecondsNotIn applies the NotIn predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsNotIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldElapsedSnapshotSeconds, vs...))
}

// ElapsedSnapshotSecondsGT applies the GT predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsGT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldElapsedSnapshotSeconds, v))
}

// ElapsedSnapshotSecondsGTE applies the GTE predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsGTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldElapsedSnapshotSeconds, v))
}

// ElapsedSnapshotSecondsLT applies the LT predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsLT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldElapsedSnapshotSeconds, v))
}

// ElapsedSnapshotSecondsLTE applies the LTE predicate on the "elapsed_snapshot_seconds" field.
func ElapsedSnapshotSecondsLTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldElapsedSnapshotSeconds, v))
}

// GoalReachedEQ applies the EQ predicate on the "goal_reached" field.
func GoalReachedEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldGoalReached, v))
}

// GoalReachedNEQ applies the NEQ predicate on the "goal_reached" field.
func GoalReachedNEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldGoalReached, v))
}

// WasAgitatedEQ applies the EQ predicate on the "was_agitated" field.
func WasAgitatedEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldWasAgitated, v))
}

// WasAgitatedNEQ applies the NEQ predicate on the "was_agitated" field.
func WasAgitatedNEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldWasAgitated, v))
}

// ReportedEQ applies the EQ predicate on the "reported" field.
func ReportedEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldReported, v))
}

// ReportedNEQ applies the NEQ predicate on the "reported" field.
func ReportedNEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldReported, v))
}

// MarkerEndedEQ applies the EQ predicate on the "marker_ended" field.
func MarkerEndedEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldMarkerEnded, v))
}

// MarkerEndedNEQ applies the NEQ predicate on the "marker_ended" field.
func MarkerEndedNEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldMarkerEnded, v))
}

// SuspectedInterruptionAtEQ applies the EQ predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSuspectedInterruptionAt, v))
}

// SuspectedInterruptionAtNEQ applies the NEQ predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldSuspectedInterruptionAt, v))
}

// SuspectedInterruptionAtIn applies the In predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldSuspectedInterruptionAt, vs...))
}

// SuspectedInterruptionAtNotIn applies the NotIn predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldSuspectedInterruptionAt, vs...))
}

// SuspectedInterruptionAtGT applies the GT predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldSuspectedInterruptionAt, v))
}

// SuspectedInterruptionAtGTE applies the GTE predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldSuspectedInterruptionAt, v))
}

// SuspectedInterruptionAtLT applies the LT predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldSuspectedInterruptionAt, v))
}

// SuspectedInterruptionAtLTE applies the LTE predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldSuspectedInterruptionAt, v))
}

// SuspectedInterruptionAtIsNil applies the IsNil predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtIsNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIsNull(FieldSuspectedInterruptionAt))
}

// SuspectedInterruptionAtNotNil applies the NotNil predicate on the "suspected_interruption_at" field.
func SuspectedInterruptionAtNotNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotNull(FieldSuspectedInterruptionAt))
}

// LastAutosaveAtEQ applies the EQ predicate on the "last_autosave_at" field.
func LastAutosaveAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldLastAutosaveAt, v))
}

// LastAutosaveAtNEQ applies the NEQ predicate on the "last_autosave_at" field.
func LastAutosaveAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldLastAutosaveAt, v))
}

// LastAutosaveAtIn applies the In predicate on the "last_autosave_at" field.
func LastAutosaveAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldLastAutosaveAt, vs...))
}

// LastAutosaveAtNotIn applies the NotIn predicate on the "last_autosave_at" field.
func LastAutosaveAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldLastAutosaveAt, vs...))
}

// LastAutosaveAtGT applies the GT predicate on the "last_autosave_at" field.
func LastAutosaveAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldLastAutosaveAt, v))
}

// LastAutosaveAtGTE applies the GTE predicate on the "last_autosave_at" field.
func LastAutosaveAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldLastAutosaveAt, v))
}

// LastAutosaveAtLT applies the LT predicate on the "last_autosave_at" field.
func LastAutosaveAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldLastAutosaveAt, v))
}

// LastAutosaveAtLTE applies the LTE predicate on the "last_autosave_at" field.
func LastAutosaveAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldLastAutosaveAt, v))
}

// LastAutosaveAtIsNil applies the IsNil predicate on the "last_autosave_at" field.
func LastAutosaveAtIsNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIsNull(FieldLastAutosaveAt))
}

// LastAutosaveAtNotNil applies the NotNil predicate on the "last_autosave_at" field.
func LastAutosaveAtNotNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotNull(FieldLastAutosaveAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActiveSession) predicate.ActiveSession {
	return predicate.ActiveSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActiveSession) predicate.ActiveSession {
	return predicate.ActiveSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActiveSession) predicate.ActiveSession {
	return predicate.ActiveSession(sql.NotPredicates(p))
}
