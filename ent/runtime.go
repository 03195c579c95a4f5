// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ivelina/tendril/ent/activesession"
	"github.com/ivelina/tendril/ent/behaviorday"
	"github.com/ivelina/tendril/ent/schema"
	"github.com/ivelina/tendril/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activesessionFields := schema.ActiveSession{}.Fields()
	_ = activesessionFields
	// activesessionDescCumulativePauseSeconds is the schema descriptor for cumulative_pause_seconds field.
	activesessionDescCumulativePauseSeconds := activesessionFields[5].Descriptor()
	// activesession.DefaultCumulativePauseSeconds holds the default value on creation for the cumulative_pause_seconds field.
	activesession.DefaultCumulativePauseSeconds = activesessionDescCumulativePauseSeconds.Default.(int)
	// activesessionDescPauseCount is the schema descriptor for pause_count field.
	activesessionDescPauseCount := activesessionFields[7].Descriptor()
	// activesession.DefaultPauseCount holds the default value on creation for the pause_count field.
	activesession.DefaultPauseCount = activesessionDescPauseCount.Default.(int)
	// activesessionDescElapsedSnapshotSeconds is the schema descriptor for elapsed_snapshot_seconds field.
	activesessionDescElapsedSnapshotSeconds := activesessionFields[8].Descriptor()
	// activesession.DefaultElapsedSnapshotSeconds holds the default value on creation for the elapsed_snapshot_seconds field.
	activesession.DefaultElapsedSnapshotSeconds = activesessionDescElapsedSnapshotSeconds.Default.(int)
	// activesessionDescGoalReached is the schema descriptor for goal_reached field.
	activesessionDescGoalReached := activesessionFields[9].Descriptor()
	// activesession.DefaultGoalReached holds the default value on creation for the goal_reached field.
	activesession.DefaultGoalReached = activesessionDescGoalReached.Default.(bool)
	// activesessionDescWasAgitated is the schema descriptor for was_agitated field.
	activesessionDescWasAgitated := activesessionFields[10].Descriptor()
	// activesession.DefaultWasAgitated holds the default value on creation for the was_agitated field.
	activesession.DefaultWasAgitated = activesessionDescWasAgitated.Default.(bool)
	// activesessionDescReported is the schema descriptor for reported field.
	activesessionDescReported := activesessionFields[11].Descriptor()
	// activesession.DefaultReported holds the default value on creation for the reported field.
	activesession.DefaultReported = activesessionDescReported.Default.(bool)
	// activesessionDescMarkerEnded is the schema descriptor for marker_ended field.
	activesessionDescMarkerEnded := activesessionFields[12].Descriptor()
	// activesession.DefaultMarkerEnded holds the default value on creation for the marker_ended field.
	activesession.DefaultMarkerEnded = activesessionDescMarkerEnded.Default.(bool)
	behaviordayFields := schema.BehaviorDay{}.Fields()
	_ = behaviordayFields
	// behaviordayDescPresent is the schema descriptor for present field.
	behaviordayDescPresent := behaviordayFields[1].Descriptor()
	// behaviorday.DefaultPresent holds the default value on creation for the present field.
	behaviorday.DefaultPresent = behaviordayDescPresent.Default.(bool)
	// behaviordayDescFocused is the schema descriptor for focused field.
	behaviordayDescFocused := behaviordayFields[2].Descriptor()
	// behaviorday.DefaultFocused holds the default value on creation for the focused field.
	behaviorday.DefaultFocused = behaviordayDescFocused.Default.(bool)
	// behaviordayDescMetGoal is the schema descriptor for met_goal field.
	behaviordayDescMetGoal := behaviordayFields[3].Descriptor()
	// behaviorday.DefaultMetGoal holds the default value on creation for the met_goal field.
	behaviorday.DefaultMetGoal = behaviordayDescMetGoal.Default.(bool)
	// behaviordayDescOverGoal is the schema descriptor for over_goal field.
	behaviordayDescOverGoal := behaviordayFields[4].Descriptor()
	// behaviorday.DefaultOverGoal holds the default value on creation for the over_goal field.
	behaviorday.DefaultOverGoal = behaviordayDescOverGoal.Default.(bool)
	// behaviordayDescFocusMinutes is the schema descriptor for focus_minutes field.
	behaviordayDescFocusMinutes := behaviordayFields[5].Descriptor()
	// behaviorday.DefaultFocusMinutes holds the default value on creation for the focus_minutes field.
	behaviorday.DefaultFocusMinutes = behaviordayDescFocusMinutes.Default.(int)
	// behaviordayDescStreakCounted is the schema descriptor for streak_counted field.
	behaviordayDescStreakCounted := behaviordayFields[6].Descriptor()
	// behaviorday.DefaultStreakCounted holds the default value on creation for the streak_counted field.
	behaviorday.DefaultStreakCounted = behaviordayDescStreakCounted.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
}
