package store

import (
	"context"
	"time"
)

// ActiveSessionData mirrors the single in-flight focus session row.
type ActiveSessionData struct {
	SessionID              string
	Status                 string
	PlannedSeconds         int
	StartedAt              *time.Time
	CumulativePauseSeconds int
	PauseStartedAt         *time.Time
	PauseCount             int
	ElapsedSnapshotSeconds int
	GoalReached            bool
	WasAgitated            bool
	Reported               bool

	MarkerEnded             bool
	SuspectedInterruptionAt *time.Time
	LastAutosaveAt          *time.Time
}

// ActiveSessionRepo manages the singleton in-flight session slot.
type ActiveSessionRepo interface {
	// Save upserts the slot.
	Save(ctx context.Context, data ActiveSessionData) error

	// Load returns the slot, or nil if empty.
	Load(ctx context.Context) (*ActiveSessionData, error)

	// Clear empties the slot.
	Clear(ctx context.Context) error
}

// FlowStateData is the serialized flow metrics blob.
type FlowStateData struct {
	ImpressionScore float64 `json:"impressionScore"`
	TempFlowScore   float64 `json:"tempFlowScore"`

	AverageRating    float64 `json:"averageRating"`
	CompletionRate   float64 `json:"completionRate"`
	InterruptionRate float64 `json:"interruptionRate"`
	ConsistencyScore float64 `json:"consistencyScore"`
	ImprovementTrend float64 `json:"improvementTrend"`

	SessionCount          int     `json:"sessionCount"`
	TotalFocusMinutes     int     `json:"totalFocusMinutes"`
	AverageSessionMinutes float64 `json:"averageSessionMinutes"`
	LongestSessionMinutes int     `json:"longestSessionMinutes"`

	CurrentStreakDays   int `json:"currentStreakDays"`
	RecentQualityStreak int `json:"recentQualityStreak"`

	LastSessionAt *time.Time `json:"lastSessionAt,omitempty"`
	LastDecayAt   *time.Time `json:"lastDecayAt,omitempty"`
}

// FlowStateRepo manages the flow metrics singleton.
type FlowStateRepo interface {
	// Save upserts the metrics.
	Save(ctx context.Context, data FlowStateData) error

	// Load returns the metrics, or nil if never saved.
	Load(ctx context.Context) (*FlowStateData, error)
}

// BehaviorDayData is one calendar day in the behavior ledger.
type BehaviorDayData struct {
	Date          string // YYYY-MM-DD, local
	Present       bool
	Focused       bool
	MetGoal       bool
	OverGoal      bool
	FocusMinutes  int
	StreakCounted bool
}

// BehaviorRepo manages the daily behavior ledger.
type BehaviorRepo interface {
	// Day returns one day's entry, or nil if absent.
	Day(ctx context.Context, date string) (*BehaviorDayData, error)

	// Upsert writes one day's entry, replacing any existing row for the date.
	Upsert(ctx context.Context, data BehaviorDayData) error

	// Range returns entries with from <= date <= to, ascending.
	Range(ctx context.Context, from, to string) ([]BehaviorDayData, error)
}

// SessionEventData captures one terminal focus session for the event log.
type SessionEventData struct {
	SessionID      string
	Minutes        int
	PlannedMinutes int
	Rating         *float64
	Completed      bool
	GoalReached    bool
	WasAgitated    bool
	StartedAt      time.Time
	ClosedOn       string // YYYY-MM-DD, local
}

// SessionEvent is a logged event with its global ordering fields.
type SessionEvent struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// EventRepo provides append and query access to the session event log.
type EventRepo interface {
	// AppendSessionEvent records a terminal session.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessionEvents returns the latest events, newest first.
	RecentSessionEvents(ctx context.Context, limit int) ([]SessionEvent, error)

	// SessionEventsOn returns the events closed on the given local day.
	SessionEventsOn(ctx context.Context, date string) ([]SessionEvent, error)
}
