package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ActiveSession is the single in-flight focus session plus the recovery
// markers. At most one row exists; it is deleted when the session closes.
type ActiveSession struct {
	ent.Schema
}

func (ActiveSession) Fields() []ent.Field {
	return []ent.Field{
		field.Int("singleton_id").
			Unique().
			Comment("Always 1; enforces the single-row invariant"),
		field.String("session_id"),
		field.String("status"),
		field.Int("planned_seconds"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Int("cumulative_pause_seconds").
			Default(0),
		field.Time("pause_started_at").
			Optional().
			Nillable(),
		field.Int("pause_count").
			Default(0),
		field.Int("elapsed_snapshot_seconds").
			Default(0).
			Comment("Recovery hint written by autosaves, never authoritative while running"),
		field.Bool("goal_reached").
			Default(false),
		field.Bool("was_agitated").
			Default(false),
		field.Bool("reported").
			Default(false),
		field.Bool("marker_ended").
			Default(false),
		field.Time("suspected_interruption_at").
			Optional().
			Nillable().
			Comment("Breadcrumb written on suspend, cleared on clean resume"),
		field.Time("last_autosave_at").
			Optional().
			Nillable(),
	}
}
