// Code generated by ent, DO NOT EDIT.

package behaviorday

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the behaviorday type in the database.
	Label = "behavior_day"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldPresent holds the string denoting the present field in the database.
	FieldPresent = "present"
	// FieldFocused holds the string denoting the focused field in the database.
	FieldFocused = "focused"
	// FieldMetGoal holds the string denoting the met_goal field in the database.
	FieldMetGoal = "met_goal"
	// FieldOverGoal holds the string denoting the over_goal field in the database.
	FieldOverGoal = "over_goal"
	// FieldFocusMinutes holds the string denoting the focus_minutes field in the database.
	FieldFocusMinutes = "focus_minutes"
	// FieldStreakCounted holds the string denoting the streak_counted field in the database.
	FieldStreakCounted = "streak_counted"
	// Table holds the table name of the behaviorday in the database.
	Table = "behavior_days"
)

// Columns holds all SQL columns for behaviorday fields.
var Columns = []string{
	FieldID,
	FieldDate,
	FieldPresent,
	FieldFocused,
	FieldMetGoal,
	FieldOverGoal,
	FieldFocusMinutes,
	FieldStreakCounted,
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
	// DefaultPresent holds the default value on creation for the "present" field.
	DefaultPresent bool
	// DefaultFocused holds the default value on creation for the "focused" field.
	DefaultFocused bool
	// DefaultMetGoal holds the default value on creation for the "met_goal" field.
	DefaultMetGoal bool
	// DefaultOverGoal holds the default value on creation for the "over_goal" field.
	DefaultOverGoal bool
	// DefaultFocusMinutes holds the default value on creation for the "focus_minutes" field.
	DefaultFocusMinutes int
	// DefaultStreakCounted holds the default value on creation for the "streak_counted" field.
	DefaultStreakCounted bool
)

// OrderOption defines the ordering options for the BehaviorDay queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByPresent orders the results by the present field.
func ByPresent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresent, opts...).ToFunc()
}

// ByFocused orders the results by the focused field.
func ByFocused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocused, opts...).ToFunc()
}

// ByMetGoal orders the results by the met_goal field.
func ByMetGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetGoal, opts...).ToFunc()
}

// ByOverGoal orders the results by the over_goal field.
func ByOverGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverGoal, opts...).ToFunc()
}

// ByFocusMinutes orders the results by the focus_minutes field.
func ByFocusMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusMinutes, opts...).ToFunc()
}

// ByStreakCounted orders the results by the streak_counted field.
func ByStreakCounted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakCounted, opts...).ToFunc()
}
