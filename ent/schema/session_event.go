package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one terminal focus session. The log is append-only;
// history and stats screens read it, the flow engine writes it.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		EventMixin{},
	}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the focus session"),
		field.Int("minutes").
			Comment("Focused minutes, pauses excluded"),
		field.Int("planned_minutes").
			Comment("Planned duration at close time"),
		field.Float("rating").
			Optional().
			Nillable().
			Comment("User's 1-3 verdict, absent when skipped"),
		field.Bool("completed").
			Comment("Whether the session closed as completed"),
		field.Bool("goal_reached").
			Comment("Whether elapsed time met the planned duration"),
		field.Bool("was_agitated").
			Comment("Whether the agitation monitor escalated during the session"),
		field.Time("started_at").
			Comment("When the session began running"),
		field.String("closed_on").
			Comment("Local calendar day the close belongs to, YYYY-MM-DD"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("closed_on"),
	}
}
