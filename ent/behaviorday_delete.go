// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ivelina/tendril/ent/behaviorday"
	"github.com/ivelina/tendril/ent/predicate"
)

// BehaviorDayDelete is the builder for deleting a BehaviorDay entity.
type BehaviorDayDelete struct {
	config
	hooks    []Hook
	mutation *BehaviorDayMutation
}

// Where appends a list predicates to the BehaviorDayDelete builder.
func (_d *BehaviorDayDelete) Where(ps ...predicate.BehaviorDay) *BehaviorDayDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BehaviorDayDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehaviorDayDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BehaviorDayDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(behaviorday.Table, sqlgraph.NewFieldSpec(behaviorday.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BehaviorDayDeleteOne is the builder for deleting a single BehaviorDay entity.
type BehaviorDayDeleteOne struct {
	_d *BehaviorDayDelete
}

// Where appends a list predicates to the BehaviorDayDelete builder.
func (_d *BehaviorDayDeleteOne) Where(ps ...predicate.BehaviorDay) *BehaviorDayDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BehaviorDayDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{behaviorday.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehaviorDayDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
