package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// FlowState holds the single row of long-term flow metrics, stored as a JSON
// blob so the metric set can evolve without migrations.
type FlowState struct {
	ent.Schema
}

func (FlowState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("singleton_id").
			Unique().
			Comment("Always 1; enforces the single-row invariant"),
		field.JSON("data", map[string]any{}).
			Comment("Flow metrics as JSON"),
		field.Time("updated_at").
			Comment("When the metrics were last written"),
	}
}
