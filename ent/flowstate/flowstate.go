// Code generated by ent, DO NOT EDIT.

package flowstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flowstate type in the database.
	Label = "flow_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingletonID holds the string denoting the singleton_id field in the database.
	FieldSingletonID = "singleton_id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the flowstate in the database.
	Table = "flow_states"
)

// Columns holds all SQL columns for flowstate fields.
var Columns = []string{
	FieldID,
	FieldSingletonID,
	FieldData,
	FieldUpdatedAt,
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

// OrderOption defines the ordering options for the FlowState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingletonID orders the results by the singleton_id field.
func BySingletonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingletonID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
