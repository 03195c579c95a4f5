// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActiveSessionsColumns holds the columns for the "active_sessions" table.
	ActiveSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton_id", Type: field.TypeInt, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "planned_seconds", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "cumulative_pause_seconds", Type: field.TypeInt, Default: 0},
		{Name: "pause_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "pause_count", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_snapshot_seconds", Type: field.TypeInt, Default: 0},
		{Name: "goal_reached", Type: field.TypeBool, Default: false},
		{Name: "was_agitated", Type: field.TypeBool, Default: false},
		{Name: "reported", Type: field.TypeBool, Default: false},
		{Name: "marker_ended", Type: field.TypeBool, Default: false},
		{Name: "suspected_interruption_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_autosave_at", Type: field.TypeTime, Nullable: true},
	}
	// ActiveSessionsTable holds the schema information for the "active_sessions" table.
	ActiveSessionsTable = &schema.Table{
		Name:       "active_sessions",
		Columns:    ActiveSessionsColumns,
		PrimaryKey: []*schema.Column{ActiveSessionsColumns[0]},
	}
	// BehaviorDaysColumns holds the columns for the "behavior_days" table.
	BehaviorDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeString, Unique: true},
		{Name: "present", Type: field.TypeBool, Default: false},
		{Name: "focused", Type: field.TypeBool, Default: false},
		{Name: "met_goal", Type: field.TypeBool, Default: false},
		{Name: "over_goal", Type: field.TypeBool, Default: false},
		{Name: "focus_minutes", Type: field.TypeInt, Default: 0},
		{Name: "streak_counted", Type: field.TypeBool, Default: false},
	}
	// BehaviorDaysTable holds the schema information for the "behavior_days" table.
	BehaviorDaysTable = &schema.Table{
		Name:       "behavior_days",
		Columns:    BehaviorDaysColumns,
		PrimaryKey: []*schema.Column{BehaviorDaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "behaviorday_date",
				Unique:  false,
				Columns: []*schema.Column{BehaviorDaysColumns[1]},
			},
		},
	}
	// FlowStatesColumns holds the columns for the "flow_states" table.
	FlowStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton_id", Type: field.TypeInt, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FlowStatesTable holds the schema information for the "flow_states" table.
	FlowStatesTable = &schema.Table{
		Name:       "flow_states",
		Columns:    FlowStatesColumns,
		PrimaryKey: []*schema.Column{FlowStatesColumns[0]},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "minutes", Type: field.TypeInt},
		{Name: "planned_minutes", Type: field.TypeInt},
		{Name: "rating", Type: field.TypeFloat64, Nullable: true},
		{Name: "completed", Type: field.TypeBool},
		{Name: "goal_reached", Type: field.TypeBool},
		{Name: "was_agitated", Type: field.TypeBool},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "closed_on", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_closed_on",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActiveSessionsTable,
		BehaviorDaysTable,
		FlowStatesTable,
		SessionEventsTable,
	}
)

func init() {
}
