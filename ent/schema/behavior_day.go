package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BehaviorDay is one calendar day in the behavior ledger. Flags only ever
// flip on; focus minutes only grow.
type BehaviorDay struct {
	ent.Schema
}

func (BehaviorDay) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			Unique().
			Comment("Local calendar day, YYYY-MM-DD"),
		field.Bool("present").
			Default(false),
		field.Bool("focused").
			Default(false),
		field.Bool("met_goal").
			Default(false),
		field.Bool("over_goal").
			Default(false),
		field.Int("focus_minutes").
			Default(0).
			Comment("Total focused minutes credited to this day"),
		field.Bool("streak_counted").
			Default(false).
			Comment("Whether this day already incremented the streak"),
	}
}

func (BehaviorDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
