// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActiveSession is the predicate function for activesession builders.
type ActiveSession func(*sql.Selector)

// BehaviorDay is the predicate function for behaviorday builders.
type BehaviorDay func(*sql.Selector)

// FlowState is the predicate function for flowstate builders.
type FlowState func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
