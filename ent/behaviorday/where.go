// Code generated by ent, DO NOT EDIT.

package behaviorday

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldLTE(FieldID, id))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldDate, v))
}

// Present applies equality check predicate on the "present" field. It's identical to PresentEQ.
func Present(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldPresent, v))
}

// Focused applies equality check predicate on the "focused" field. It's identical to FocusedEQ.
func Focused(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldFocused, v))
}

// MetGoal applies equality check predicate on the "met_goal" field. It's identical to MetGoalEQ.
func MetGoal(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldMetGoal, v))
}

// OverGoal applies equality check predicate on the "over_goal" field. It's identical to OverGoalEQ.
func OverGoal(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldOverGoal, v))
}

// FocusMinutes applies equality check predicate on the "focus_minutes" field. It's identical to FocusMinutesEQ.
func FocusMinutes(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldFocusMinutes, v))
}

// StreakCounted applies equality check predicate on the "streak_counted" field. It's identical to StreakCountedEQ.
func StreakCounted(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldStreakCounted, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldContainsFold(FieldDate, v))
}

// PresentEQ applies the EQ predicate on the "present" field.
func PresentEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldPresent, v))
}

// PresentNEQ applies the NEQ predicate on the "present" field.
func PresentNEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldPresent, v))
}

// FocusedEQ applies the EQ predicate on the "focused" field.
func FocusedEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldFocused, v))
}

// FocusedNEQ applies the NEQ predicate on the "focused" field.
func FocusedNEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldFocused, v))
}

// MetGoalEQ applies the EQ predicate on the "met_goal" field.
func MetGoalEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldMetGoal, v))
}

// MetGoalNEQ applies the NEQ predicate on the "met_goal" field.
func MetGoalNEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldMetGoal, v))
}

// OverGoalEQ applies the EQ predicate on the "over_goal" field.
func OverGoalEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldOverGoal, v))
}

// OverGoalNEQ applies the NEQ predicate on the "over_goal" field.
func OverGoalNEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldOverGoal, v))
}

// FocusMinutesEQ applies the EQ predicate on the "focus_minutes" field.
func FocusMinutesEQ(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldFocusMinutes, v))
}

// FocusMinutesNEQ applies the NEQ predicate on the "focus_minutes" field.
func FocusMinutesNEQ(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldFocusMinutes, v))
}

// FocusMinutesIn applies the In predicate on the "focus_minutes" field.
func FocusMinutesIn(vs ...int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldIn(FieldFocusMinutes, vs...))
}

// FocusMinutesNotIn applies the NotIn predicate on the "focus_minutes" field.
func FocusMinutesNotIn(vs ...int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNotIn(FieldFocusMinutes, vs...))
}

// FocusMinutesGT applies the GT predicate on the "focus_minutes" field.
func FocusMinutesGT(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldGT(FieldFocusMinutes, v))
}

// FocusMinutesGTE applies the GTE predicate on the "focus_minutes" field.
func FocusMinutesGTE(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldGTE(FieldFocusMinutes, v))
}

// FocusMinutesLT applies the LT predicate on the "focus_minutes" field.
func FocusMinutesLT(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldLT(FieldFocusMinutes, v))
}

// FocusMinutesLTE applies the LTE predicate on the "focus_minutes" field.
func FocusMinutesLTE(v int) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldLTE(FieldFocusMinutes, v))
}

// StreakCountedEQ applies the EQ predicate on the "streak_counted" field.
func StreakCountedEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldEQ(FieldStreakCounted, v))
}

// StreakCountedNEQ applies the NEQ predicate on the "streak_counted" field.
func StreakCountedNEQ(v bool) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.FieldNEQ(FieldStreakCounted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BehaviorDay) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BehaviorDay) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BehaviorDay) predicate.BehaviorDay {
	return predicate.BehaviorDay(sql.NotPredicates(p))
}
