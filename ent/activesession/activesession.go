// Code generated by ent, DO NOT EDIT.

package activesession

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activesession type in the database.
	Label = "active_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingletonID holds the string denoting the singleton_id field in the database.
	FieldSingletonID = "singleton_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPlannedSeconds holds the string denoting the planned_seconds field in the database.
	FieldPlannedSeconds = "planned_seconds"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCumulativePauseSeconds holds the string denoting the cumulative_pause_seconds field in the database.
	FieldCumulativePauseSeconds = "cumulative_pause_seconds"
	// FieldPauseStartedAt holds the string denoting the pause_started_at field in the database.
	FieldPauseStartedAt = "pause_started_at"
	// FieldPauseCount holds the string denoting the pause_count field in the database.
	FieldPauseCount = "pause_count"
	// FieldElapsedSnapshotSeconds holds the string denoting the elapsed_snapshot_seconds field in the database.
	FieldElapsedSnapshotSeconds = "elapsed_snapshot_seconds"
	// FieldGoalReached holds the string denoting the goal_reached field in the database.
	FieldGoalReached = "goal_reached"
	// FieldWasAgitated holds the string denoting the was_agitated field in the database.
	FieldWasAgitated = "was_agitated"
	// FieldReported holds the string denoting the reported field in the database.
	FieldReported = "reported"
	// FieldMarkerEnded holds the string denoting the marker_ended field in the database.
	FieldMarkerEnded = "marker_ended"
	// FieldSuspectedInterruptionAt holds the string denoting the suspected_interruption_at field in the database.
	FieldSuspectedInterruptionAt = "suspected_interruption_at"
	// FieldLastAutosaveAt holds the string denoting the last_autosave_at field in the database.
	FieldLastAutosaveAt = "last_autosave_at"
	// Table holds the table name of the activesession in the database.
	Table = "active_sessions"
)

// Columns holds all SQL columns for activesession fields.
var Columns = []string{
	FieldID,
	FieldSingletonID,
	FieldSessionID,
	FieldStatus,
	FieldPlannedSeconds,
	FieldStartedAt,
	FieldCumulativePauseSeconds,
	FieldPauseStartedAt,
	FieldPauseCount,
	FieldElapsedSnapshotSeconds,
	FieldGoalReached,
	FieldWasAgitated,
	FieldReported,
	FieldMarkerEnded,
	FieldSuspectedInterruptionAt,
	FieldLastAutosaveAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCumulativePauseSeconds holds the default value on creation for the "cumulative_pause_seconds" field.
	DefaultCumulativePauseSeconds int
	// DefaultPauseCount holds the default value on creation for the "pause_count" field.
	DefaultPauseCount int
	// DefaultElapsedSnapshotSeconds holds the default value on creation for the "elapsed_snapshot_seconds" field.
	DefaultElapsedSnapshotSeconds int
	// DefaultGoalReached holds the default value on creation for the "goal_reached" field.
	DefaultGoalReached bool
	// DefaultWasAgitated holds the default value on creation for the "was_agitated" field.
	DefaultWasAgitated bool
	// DefaultReported holds the default value on creation for the "reported" field.
	DefaultReported bool
	// DefaultMarkerEnded holds the default value on creation for the "marker_ended" field.
	DefaultMarkerEnded bool
)

// OrderOption defines the ordering options for the ActiveSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingletonID orders the results by the singleton_id field.
func BySingletonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingletonID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPlannedSeconds orders the results by the planned_seconds field.
func ByPlannedSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedSeconds, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCumulativePauseSeconds orders the results by the cumulative_pause_seconds field.
func ByCumulativePauseSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCumulativePauseSeconds, opts...).ToFunc()
}

// ByPauseStartedAt orders the results by the pause_started_at field.
func ByPauseStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseStartedAt, opts...).ToFunc()
}

// ByPauseCount orders the results by the pause_count field.
func ByPauseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseCount, opts...).ToFunc()
}

// ByElapsedSnapshotSeconds orders the results by the elapsed_snapshot_seconds field.
func ByElapsedSnapshotSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedSnapshotSeconds, opts...).ToFunc()
}

// ByGoalReached orders the results by the goal_reached field.
func ByGoalReached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalReached, opts...).ToFunc()
}

// ByWasAgitated orders the results by the was_agitated field.
func ByWasAgitated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasAgitated, opts...).ToFunc()
}

// ByReported orders the results by the reported field.
func ByReported(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReported, opts...).ToFunc()
}

// ByMarkerEnded orders the results by the marker_ended field.
func ByMarkerEnded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkerEnded, opts...).ToFunc()
}

// BySuspectedInterruptionAt orders the results by the suspected_interruption_at field.
func BySuspectedInterruptionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspectedInterruptionAt, opts...).ToFunc()
}

// ByLastAutosaveAt orders the results by the last_autosave_at field.
func ByLastAutosaveAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAutosaveAt, opts...).ToFunc()
}
