package focus

import (
	"time"

	"github.com/google/uuid"
)

// Status is a session lifecycle phase.
type Status string

const (
	StatusPreparing   Status = "preparing"
	StatusStarting    Status = "starting"
	StatusRunning     Status = "running"
	StatusPaused      Status = "paused"
	StatusCompleted   Status = "completed"
	StatusInterrupted Status = "interrupted"
)

// Terminal reports whether the session can no longer transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusInterrupted
}

// MaxPauses is how many times a single session may be paused.
const MaxPauses = 1

// Session is the persistent record of one focus sitting. All elapsed-time
// math is timestamp-derived; ElapsedSnapshotSeconds is only a recovery hint
// written by autosaves, never a source of truth while the session runs.
type Session struct {
	ID                     string
	PlannedDurationSeconds int
	Status                 Status
	StartedAt              time.Time
	CumulativePauseSeconds int
	PauseStartedAt         *time.Time
	PauseCount             int
	ElapsedSnapshotSeconds int
	GoalReached            bool
	WasAgitated            bool
	Reported               bool
}

// NewSession returns a session in the preparing phase with the given planned
// duration in seconds.
func NewSession(plannedSeconds int) *Session {
	return &Session{
		ID:                     uuid.NewString(),
		PlannedDurationSeconds: plannedSeconds,
		Status:                 StatusPreparing,
	}
}

// Paused reports whether a pause span is currently open.
func (s *Session) Paused() bool {
	return s.Status == StatusPaused && s.PauseStartedAt != nil
}

// ElapsedAt returns the focused seconds at the given instant.
func (s *Session) ElapsedAt(now time.Time) int {
	var pauseStart time.Time
	if s.PauseStartedAt != nil {
		pauseStart = *s.PauseStartedAt
	}
	return Elapsed(s.StartedAt, s.CumulativePauseSeconds, s.Paused(), pauseStart, now)
}

// GoalReachedAt reports whether the planned duration has been met at now.
func (s *Session) GoalReachedAt(now time.Time) bool {
	return s.PlannedDurationSeconds > 0 && s.ElapsedAt(now) >= s.PlannedDurationSeconds
}

// Markers are small sidecar flags persisted next to the active session so a
// restart can tell an orderly shutdown from a crash.
type Markers struct {
	Ended                   bool
	SuspectedInterruptionAt *time.Time
	LastAutosaveAt          *time.Time
}
