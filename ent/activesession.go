// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/activesession"
)

// ActiveSession is the model entity for the ActiveSession schema.
type ActiveSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Always 1; enforces the single-row invariant
	SingletonID int `json:"singleton_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PlannedSeconds holds the value of the "planned_seconds" field.
	PlannedSeconds int `json:"planned_seconds,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CumulativePauseSeconds holds the value of the "cumulative_pause_seconds" field.
	CumulativePauseSeconds int `json:"cumulative_pause_seconds,omitempty"`
	// PauseStartedAt holds the value of the "pause_started_at" field.
	PauseStartedAt *time.Time `json:"pause_started_at,omitempty"`
	// PauseCount holds the value of the "pause_count" field.
	PauseCount int `json:"pause_count,omitempty"`
	// Recovery hint written by autosaves, never authoritative while running
	ElapsedSnapshotSeconds int `json:"elapsed_snapshot_seconds,omitempty"`
	// GoalReached holds the value of the "goal_reached" field.
	GoalReached bool `json:"goal_reached,omitempty"`
	// WasAgitated holds the value of the "was_agitated" field.
	WasAgitated bool `json:"was_agitated,omitempty"`
	// Reported holds the value of the "reported" field.
	Reported bool `json:"reported,omitempty"`
	// MarkerEnded holds the value of the "marker_ended" field.
	MarkerEnded bool `json:"marker_ended,omitempty"`
	// Breadcrumb written on suspend, cleared on clean resume
	SuspectedInterruptionAt *time.Time `json:"suspected_interruption_at,omitempty"`
	// LastAutosaveAt holds the value of the "last_autosave_at" field.
	LastAutosaveAt *time.Time `json:"last_autosave_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActiveSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activesession.FieldGoalReached, activesession.FieldWasAgitated, activesession.FieldReported, activesession.FieldMarkerEnded:
			values[i] = new(sql.NullBool)
		case activesession.FieldID, activesession.FieldSingletonID, activesession.FieldPlannedSeconds, activesession.FieldCumulativePauseSeconds, activesession.FieldPauseCount, activesession.FieldElapsedSnapshotSeconds:
			values[i] = new(sql.NullInt64)
		case activesession.FieldSessionID, activesession.FieldStatus:
			values[i] = new(sql.NullString)
		case activesession.FieldStartedAt, activesession.FieldPauseStartedAt, activesession.FieldSuspectedInterruptionAt, activesession.FieldLastAutosaveAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActiveSession fields.
func (_m *ActiveSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activesession.FieldSingletonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field singleton_id", values[i])
			} else if value.Valid {
				_m.SingletonID = int(value.Int64)
			}
		case activesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case activesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case activesession.FieldPlannedSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field planned_seconds", values[i])
			} else if value.Valid {
				_m.PlannedSeconds = int(value.Int64)
			}
		case activesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case activesession.FieldCumulativePauseSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cumulative_pause_seconds", values[i])
			} else if value.Valid {
				_m.CumulativePauseSeconds = int(value.Int64)
			}
		case activesession.FieldPauseStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pause_started_at", values[i])
			} else if value.Valid {
				_m.PauseStartedAt = new(time.Time)
				*_m.PauseStartedAt = value.Time
			}
		case activesession.FieldPauseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pause_count", values[i])
			} else if value.Valid {
				_m.PauseCount = int(value.Int64)
			}
		case activesession.FieldElapsedSnapshotSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_snapshot_seconds", values[i])
			} else if value.Valid {
				_m.ElapsedSnapshotSeconds = int(value.Int64)
			}
		case activesession.FieldGoalReached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field goal_reached", values[i])
			} else if value.Valid {
				_m.GoalReached = value.Bool
			}
		case activesession.FieldWasAgitated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_agitated", values[i])
			} else if value.Valid {
				_m.WasAgitated = value.Bool
			}
		case activesession.FieldReported:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reported", values[i])
			} else if value.Valid {
				_m.Reported = value.Bool
			}
		case activesession.FieldMarkerEnded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field marker_ended", values[i])
			} else if value.Valid {
				_m.MarkerEnded = value.Bool
			}
		case activesession.FieldSuspectedInterruptionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field suspected_interruption_at", values[i])
			} else if value.Valid {
				_m.SuspectedInterruptionAt = new(time.Time)
				*_m.SuspectedInterruptionAt = value.Time
			}
		case activesession.FieldLastAutosaveAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_autosave_at", values[i])
			} else if value.Valid {
				_m.LastAutosaveAt = new(time.Time)
				*_m.LastAutosaveAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActiveSession.
// This includes values selected through modifiers, order, etc.
func (_m *ActiveSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActiveSession.
// Note that you need to call ActiveSession.Unwrap() before calling this method if this ActiveSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActiveSession) Update() *ActiveSessionUpdateOne {
	return NewActiveSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActiveSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActiveSession) Unwrap() *ActiveSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActiveSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActiveSession) String() string {
	var builder strings.Builder
	builder.WriteString("ActiveSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("singleton_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SingletonID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("planned_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannedSeconds))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cumulative_pause_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.CumulativePauseSeconds))
	builder.WriteString(", ")
	if v := _m.PauseStartedAt; v != nil {
		builder.WriteString("pause_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("pause_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PauseCount))
	builder.WriteString(", ")
	builder.WriteString("elapsed_snapshot_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedSnapshotSeconds))
	builder.WriteString(", ")
	builder.WriteString("goal_reached=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoalReached))
	builder.WriteString(", ")
	builder.WriteString("was_agitated=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasAgitated))
	builder.WriteString(", ")
	builder.WriteString("reported=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reported))
	builder.WriteString(", ")
	builder.WriteString("marker_ended=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarkerEnded))
	builder.WriteString(", ")
	if v := _m.SuspectedInterruptionAt; v != nil {
		builder.WriteString("suspected_interruption_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastAutosaveAt; v != nil {
		builder.WriteString("last_autosave_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ActiveSessions is a parsable slice of ActiveSession.
type ActiveSessions []*ActiveSession
