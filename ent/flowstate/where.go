// Code generated by ent, DO NOT EDIT.

package flowstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FlowState {
	return predicate.FlowState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FlowState {
	return predicate.FlowState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FlowState {
	return predicate.FlowState(sql.FieldLTE(FieldID, id))
}

// SingletonID applies equality check predicate on the "singleton_id" field. It's identical to SingletonIDEQ.
func SingletonID(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldEQ(FieldSingletonID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldEQ(FieldUpdatedAt, v))
}

// SingletonIDEQ applies the EQ predicate on the "singleton_id" field.
func SingletonIDEQ(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldEQ(FieldSingletonID, v))
}

// SingletonIDNEQ applies the NEQ predicate on the "singleton_id" field.
func SingletonIDNEQ(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldNEQ(FieldSingletonID, v))
}

// SingletonIDIn applies the In predicate on the "singleton_id" field.
func SingletonIDIn(vs ...int) predicate.FlowState {
	return predicate.FlowState(sql.FieldIn(FieldSingletonID, vs...))
}

// SingletonIDNotIn applies the NotIn predicate on the "singleton_id" field.
func SingletonIDNotIn(vs ...int) predicate.FlowState {
	return predicate.FlowState(sql.FieldNotIn(FieldSingletonID, vs...))
}

// SingletonIDGT applies the GT predicate on the "singleton_id" field.
func SingletonIDGT(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldGT(FieldSingletonID, v))
}

// SingletonIDGTE applies the GTE predicate on the "singleton_id" field.
func SingletonIDGTE(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldGTE(FieldSingletonID, v))
}

// SingletonIDLT applies the LT predicate on the "singleton_id" field.
func SingletonIDLT(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldLT(FieldSingletonID, v))
}

// SingletonIDLTE applies the LTE predicate on the "singleton_id" field.
func SingletonIDLTE(v int) predicate.FlowState {
	return predicate.FlowState(sql.FieldLTE(FieldSingletonID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FlowState {
	return predicate.FlowState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlowState) predicate.FlowState {
	return predicate.FlowState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlowState) predicate.FlowState {
	return predicate.FlowState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlowState) predicate.FlowState {
	return predicate.FlowState(sql.NotPredicates(p))
}
