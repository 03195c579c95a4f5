// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/behaviorday"
)

// BehaviorDay is the model entity for the BehaviorDay schema.
type BehaviorDay struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Local calendar day, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// Present holds the value of the "present" field.
	Present bool `json:"present,omitempty"`
	// Focused holds the value of the "focused" field.
	Focused bool `json:"focused,omitempty"`
	// MetGoal holds the value of the "met_goal" field.
	MetGoal bool `json:"met_goal,omitempty"`
	// OverGoal holds the value of the "over_goal" field.
	OverGoal bool `json:"over_goal,omitempty"`
	// Total focused minutes credited to this day
	FocusMinutes int `json:"focus_minutes,omitempty"`
	// Whether this day already incremented the streak
	StreakCounted bool `json:"streak_counted,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BehaviorDay) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case behaviorday.FieldPresent, behaviorday.FieldFocused, behaviorday.FieldMetGoal, behaviorday.FieldOverGoal, behaviorday.FieldStreakCounted:
			values[i] = new(sql.NullBool)
		case behaviorday.FieldID, behaviorday.FieldFocusMinutes:
			values[i] = new(sql.NullInt64)
		case behaviorday.FieldDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BehaviorDay fields.
func (_m *BehaviorDay) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case behaviorday.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case behaviorday.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case behaviorday.FieldPresent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field present", values[i])
			} else if value.Valid {
				_m.Present = value.Bool
			}
		case behaviorday.FieldFocused:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field focused", values[i])
			} else if value.Valid {
				_m.Focused = value.Bool
			}
		case behaviorday.FieldMetGoal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field met_goal", values[i])
			} else if value.Valid {
				_m.MetGoal = value.Bool
			}
		case behaviorday.FieldOverGoal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field over_goal", values[i])
			} else if value.Valid {
				_m.OverGoal = value.Bool
			}
		case behaviorday.FieldFocusMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field focus_minutes", values[i])
			} else if value.Valid {
				_m.FocusMinutes = int(value.Int64)
			}
		case behaviorday.FieldStreakCounted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field streak_counted", values[i])
			} else if value.Valid {
				_m.StreakCounted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BehaviorDay.
// This includes values selected through modifiers, order, etc.
func (_m *BehaviorDay) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BehaviorDay.
// Note that you need to call BehaviorDay.Unwrap() before calling this method if this BehaviorDay
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BehaviorDay) Update() *BehaviorDayUpdateOne {
	return NewBehaviorDayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BehaviorDay entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BehaviorDay) Unwrap() *BehaviorDay {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BehaviorDay is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BehaviorDay) String() string {
	var builder strings.Builder
	builder.WriteString("BehaviorDay(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("present=")
	builder.WriteString(fmt.Sprintf("%v", _m.Present))
	builder.WriteString(", ")
	builder.WriteString("focused=")
	builder.WriteString(fmt.Sprintf("%v", _m.Focused))
	builder.WriteString(", ")
	builder.WriteString("met_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetGoal))
	builder.WriteString(", ")
	builder.WriteString("over_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverGoal))
	builder.WriteString(", ")
	builder.WriteString("focus_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusMinutes))
	builder.WriteString(", ")
	builder.WriteString("streak_counted=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakCounted))
	builder.WriteByte(')')
	return builder.String()
}

// BehaviorDays is a parsable slice of BehaviorDay.
type BehaviorDays []*BehaviorDay
