// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/flowstate"
)

// FlowState is the model entity for the FlowState schema.
type FlowState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Always 1; enforces the single-row invariant
	SingletonID int `json:"singleton_id,omitempty"`
	// Flow metrics as JSON
	Data map[string]interface{} `json:"data,omitempty"`
	// When the metrics were last written
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlowState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flowstate.FieldData:
			values[i] = new([]byte)
		case flowstate.FieldID, flowstate.FieldSingletonID:
			values[i] = new(sql.NullInt64)
		case flowstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlowState fields.
func (_m *FlowState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flowstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flowstate.FieldSingletonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field singleton_id", values[i])
			} else if value.Valid {
				_m.SingletonID = int(value.Int64)
			}
		case flowstate.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case flowstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlowState.
// This includes values selected through modifiers, order, etc.
func (_m *FlowState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FlowState.
// Note that you need to call FlowState.Unwrap() before calling this method if this FlowState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlowState) Update() *FlowStateUpdateOne {
	return NewFlowStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlowState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlowState) Unwrap() *FlowState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlowState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlowState) String() string {
	var builder strings.Builder
	builder.WriteString("FlowState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("singleton_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SingletonID))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FlowStates is a parsable slice of FlowState.
type FlowStates []*FlowState
